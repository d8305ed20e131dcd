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

// Package uci speaks the Universal Chess Interface over a line based
// text stream and drives the core through it. The core itself never
// sees a UCI token.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/4iy4/athena/internal/board"
	"github.com/4iy4/athena/internal/config"
	mylog "github.com/4iy4/athena/internal/logging"
	"github.com/4iy4/athena/internal/movegen"
	"github.com/4iy4/athena/internal/search"
	"github.com/4iy4/athena/internal/version"
)

// Handler reads UCI commands from one stream and answers on another.
// Create one with New or, for tests, NewWithIO.
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer
	log *logging.Logger
	msg *message.Printer

	pos    *board.Position
	search *search.Search

	// taken while a go command is searching, so quit can wait for
	// the result and a second go is rejected
	searching *semaphore.Weighted

	options *optionSet
}

// NewWithIO creates a handler on the given streams.
func NewWithIO(in io.Reader, out io.Writer) *Handler {
	h := &Handler{
		in:        bufio.NewScanner(in),
		out:       bufio.NewWriter(out),
		log:       mylog.UCI(),
		msg:       message.NewPrinter(language.English),
		pos:       board.NewPosition(),
		search:    search.New(),
		searching: semaphore.NewWeighted(1),
	}
	h.options = newOptions(h)
	return h
}

// Loop reads and answers commands until quit or the end of the input
// stream.
func (h *Handler) Loop() {
	for h.in.Scan() {
		line := strings.TrimSpace(h.in.Text())
		if line == "" {
			continue
		}
		h.log.Debugf("received: %s", line)
		if !h.handle(strings.Fields(line)) {
			break
		}
	}
	// wait for a running search before leaving
	h.waitForSearch()
}

// handle dispatches one command. Returns false on quit.
func (h *Handler) handle(tokens []string) bool {
	switch tokens[0] {
	case "uci":
		h.send("id name Athena " + version.Version())
		h.send("id author Athena project")
		for _, line := range h.options.describe() {
			h.send(line)
		}
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "setoption":
		h.options.set(tokens[1:])
	case "ucinewgame":
		h.waitForSearch()
		h.pos = board.NewPosition()
		h.search.Reset()
	case "position":
		h.waitForSearch()
		h.position(tokens[1:])
	case "go":
		h.goCommand(tokens[1:])
	case "stop":
		// the core searches to a fixed depth and cannot be
		// interrupted, just wait for its result
		h.waitForSearch()
	case "debug", "register":
		// recognized but without effect
	case "quit":
		return false
	default:
		h.log.Warningf("unknown command: %s", tokens[0])
	}
	return true
}

// position handles "position [fen <fen>|startpos] [moves m1 m2 ...]".
func (h *Handler) position(tokens []string) {
	if len(tokens) == 0 {
		h.info("position needs startpos or fen")
		return
	}
	var fen string
	i := 0
	switch tokens[0] {
	case "startpos":
		fen = board.StartFEN
		i = 1
	case "fen":
		i = 1
		for ; i < len(tokens) && tokens[i] != "moves"; i++ {
			fen += tokens[i] + " "
		}
	default:
		h.info("position needs startpos or fen")
		return
	}

	p, err := board.FromFEN(strings.TrimSpace(fen))
	if err != nil {
		h.info(err.Error())
		return
	}
	if i < len(tokens) && tokens[i] == "moves" {
		for _, lan := range tokens[i+1:] {
			m, err := movegen.FromLAN(p, lan)
			if err != nil {
				h.info(err.Error())
				return
			}
			p.Make(m)
		}
	}
	h.pos = p
	h.log.Debugf("position now %s", p.FEN())
}

// goCommand starts a search on the current position. Only the depth limit
// is honored, a missing or out of range depth uses the configured
// default.
func (h *Handler) goCommand(tokens []string) {
	depth := config.Current.Engine.Depth
	for i := 0; i < len(tokens); i++ {
		if tokens[i] == "depth" && i+1 < len(tokens) {
			if d, err := strconv.Atoi(tokens[i+1]); err == nil {
				depth = d
			}
			i++
		}
	}
	if depth <= 0 || depth > search.MaxDepth {
		depth = config.Current.Engine.Depth
	}

	if !h.searching.TryAcquire(1) {
		h.info("already searching")
		return
	}
	pos := h.pos
	go func() {
		defer h.searching.Release(1)
		start := time.Now()
		best := h.search.Best(pos, depth)
		elapsed := time.Since(start)
		nodes := h.search.Nodes()
		nps := uint64(0)
		if ns := elapsed.Nanoseconds(); ns > 0 {
			nps = nodes * uint64(time.Second) / uint64(ns)
		}
		h.send(h.msg.Sprintf("info depth %d nodes %d time %d nps %d", depth, nodes, elapsed.Milliseconds(), nps))
		h.send("bestmove " + best.String())
	}()
}

// waitForSearch blocks until no search is running.
func (h *Handler) waitForSearch() {
	_ = h.searching.Acquire(context.Background(), 1)
	h.searching.Release(1)
}

func (h *Handler) send(line string) {
	h.log.Debugf("sending: %s", line)
	fmt.Fprintln(h.out, line)
	h.out.Flush()
}

func (h *Handler) info(text string) {
	h.send("info string " + text)
}
