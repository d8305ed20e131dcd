/*
 * Athena - UCI chess engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Athena is a UCI chess engine. Without flags it enters the UCI loop
// on stdin/stdout.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/4iy4/athena/internal/board"
	"github.com/4iy4/athena/internal/config"
	"github.com/4iy4/athena/internal/logging"
	"github.com/4iy4/athena/internal/movegen"
	"github.com/4iy4/athena/internal/search"
	"github.com/4iy4/athena/internal/uci"
	"github.com/4iy4/athena/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "./athena.toml", "path to the TOML settings file")
	logLevel := flag.String("loglvl", "", "log level (critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", board.StartFEN, "position for -perft and -bench")
	perftDepth := flag.Int("perft", 0, "run perft to this depth and exit")
	benchDepth := flag.Int("bench", 0, "search the position to this depth, print speed and exit")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof")
	flag.Parse()

	out := message.NewPrinter(language.English)

	if *showVersion {
		out.Printf("Athena %s\n", version.Version())
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := config.Load(*configFile); err != nil {
		logging.Engine().Infof("no config file loaded: %v", err)
	}
	level := config.Current.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}
	logging.SetLevel(level)

	if *perftDepth > 0 {
		if err := movegen.RunPerft(os.Stdout, *fen, *perftDepth); err != nil {
			out.Printf("perft: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *benchDepth > 0 {
		p, err := board.FromFEN(*fen)
		if err != nil {
			out.Printf("bench: %v\n", err)
			os.Exit(1)
		}
		s := search.New()
		start := time.Now()
		best := s.Best(p, *benchDepth)
		elapsed := time.Since(start)
		nps := uint64(0)
		if ns := elapsed.Nanoseconds(); ns > 0 {
			nps = s.Nodes() * uint64(time.Second) / uint64(ns)
		}
		out.Printf("bestmove %s  depth %d  nodes %d  time %v  nps %d\n",
			best, *benchDepth, s.Nodes(), elapsed.Round(time.Millisecond), nps)
		return
	}

	uci.New().Loop()
}
