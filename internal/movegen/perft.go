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

package movegen

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/4iy4/athena/internal/board"
)

// Perft counts the legal move paths of the given depth. The standard
// correctness check for move generation and make/undo.
func Perft(p *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	us := p.SideToMove()
	var nodes uint64
	for _, m := range Moves(p, nil) {
		p.Make(m)
		if !p.InCheck(us) {
			nodes += Perft(p, depth-1)
		}
		p.Unmake()
	}
	return nodes
}

// Divide prints the perft count behind every root move, the usual
// tool to narrow a perft mismatch down to a subtree.
func Divide(w io.Writer, p *board.Position, depth int) uint64 {
	out := message.NewPrinter(language.English)
	us := p.SideToMove()
	var total uint64
	for _, m := range Moves(p, nil) {
		p.Make(m)
		if !p.InCheck(us) {
			n := Perft(p, depth-1)
			total += n
			out.Fprintf(w, "%s: %d\n", m, n)
		}
		p.Unmake()
	}
	out.Fprintf(w, "total: %d\n", total)
	return total
}

// RunPerft runs perft depth by depth on the given position and
// prints counts and speed.
func RunPerft(w io.Writer, fen string, maxDepth int) error {
	out := message.NewPrinter(language.English)
	p, err := board.FromFEN(fen)
	if err != nil {
		return err
	}
	out.Fprintf(w, "perft of %s\n", fen)
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := Perft(p, d)
		elapsed := time.Since(start)
		nps := uint64(0)
		if ns := elapsed.Nanoseconds(); ns > 0 {
			nps = nodes * uint64(time.Second) / uint64(ns)
		}
		out.Fprintf(w, "depth %d  nodes %d  time %v  nps %d\n", d, nodes, elapsed.Round(time.Millisecond), nps)
	}
	return nil
}
