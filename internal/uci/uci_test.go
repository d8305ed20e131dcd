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

package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/4iy4/athena/internal/config"
)

// run feeds the commands to a fresh handler and returns everything it
// answered. The trailing quit makes Loop return after waiting for any
// running search.
func run(t *testing.T, commands ...string) (*Handler, string) {
	t.Helper()
	in := strings.NewReader(strings.Join(commands, "\n") + "\nquit\n")
	var out bytes.Buffer
	h := NewWithIO(in, &out)
	h.Loop()
	return h, out.String()
}

func TestHandshake(t *testing.T) {
	_, out := run(t, "uci", "isready")
	assert.Contains(t, out, "id name Athena")
	assert.Contains(t, out, "option name Hash type spin default 64 min 64 max 32768")
	assert.Contains(t, out, "option name Ponder type check default false")
	assert.Contains(t, out, "option name UCI_AnalyseMode type check default false")
	assert.Contains(t, out, "uciok")
	assert.Contains(t, out, "readyok")
}

func TestPositionCommand(t *testing.T) {
	h, _ := run(t, "position startpos moves e2e4 e7e5")
	assert.Equal(t,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		h.pos.FEN())

	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	h, _ = run(t, "position fen "+fen)
	assert.Equal(t, fen, h.pos.FEN())

	h, _ = run(t, "position fen "+fen+" moves e1g1")
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1", h.pos.FEN())

	// bad input is reported and leaves the position alone
	h, out := run(t, "position startpos moves e2e5")
	assert.Contains(t, out, "info string")
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", h.pos.FEN())
}

func TestGoCommand(t *testing.T) {
	_, out := run(t, "position startpos", "go depth 1")
	assert.Contains(t, out, "bestmove ")

	// a mate in one is found and announced
	_, out = run(t, "position fen 7k/6pp/8/8/8/8/6PP/R6K w - - 0 1", "go depth 2")
	assert.Contains(t, out, "bestmove a1a8")
}

func TestGoWithoutMoves(t *testing.T) {
	// stalemate: the sentinel null move is announced
	_, out := run(t, "position fen k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", "go depth 2")
	assert.Contains(t, out, "bestmove 0000")
}

func TestSetOption(t *testing.T) {
	saved := config.Current
	defer func() { config.Current = saved }()

	run(t, "setoption name Hash value 128")
	assert.Equal(t, 128, config.Current.Engine.HashMB)

	run(t, "setoption name Ponder value true")
	assert.True(t, config.Current.Engine.Ponder)

	run(t, "setoption name UCI_AnalyseMode value true")
	assert.True(t, config.Current.Engine.AnalyseMode)

	// out of range values are rejected
	run(t, "setoption name Hash value 1")
	assert.Equal(t, 128, config.Current.Engine.HashMB)

	_, out := run(t, "setoption name Bogus value 1")
	assert.Contains(t, out, "unknown option Bogus")
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	h, _ := run(t, "flizzle", "position startpos moves e2e4")
	assert.Equal(t,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		h.pos.FEN())
}

func TestUciNewGame(t *testing.T) {
	h, _ := run(t, "position startpos moves e2e4", "ucinewgame")
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", h.pos.FEN())
}
