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

// Package search finds the best move of a position with an
// iteratively deepened alpha-beta search in negamax form, a
// quiescence search past the horizon, a transposition table and
// killer move ordering. A search runs single threaded from start to
// finish, depth is its only budget.
package search

import (
	"github.com/op/go-logging"

	"github.com/4iy4/athena/internal/board"
	"github.com/4iy4/athena/internal/chess"
	"github.com/4iy4/athena/internal/eval"
	mylog "github.com/4iy4/athena/internal/logging"
	"github.com/4iy4/athena/internal/movegen"
	"github.com/4iy4/athena/internal/ttable"
)

const (
	// MaxDepth is the hard depth limit of the search.
	MaxDepth = 128

	// DefaultDepth is used when the host requests no depth or one
	// out of range.
	DefaultDepth = 6

	// Infinity bounds the alpha-beta window. A mated side scores
	// -Infinity plus the distance to the mate.
	Infinity = 30000
)

// move ordering bands, highest first: the table move, then killers,
// then captures, then everything else by its static move score
const (
	orderTableMove = 1 << 24
	orderKiller    = 1 << 20
	orderCapture   = 1 << 16
)

// Search holds the state kept across searches: the transposition
// table and the killer moves. Create one with New, call Reset between
// games.
type Search struct {
	log *logging.Logger

	tt      *ttable.Table
	killers [MaxDepth + 1][2]chess.Move

	nodes uint64

	// per ply buffers reused by every search to keep the move loop
	// allocation free
	moves  [MaxDepth + 1][]chess.Move
	scores [MaxDepth + 1][]int
}

// New creates a search with a default sized transposition table.
func New() *Search {
	return &Search{
		log: mylog.Engine(),
		tt:  ttable.New(ttable.DefaultEntries),
	}
}

// NewWithTable creates a search with the given number of
// transposition table entries. Mostly for tests.
func NewWithTable(entries int) *Search {
	return &Search{
		log: mylog.Engine(),
		tt:  ttable.New(entries),
	}
}

// Reset clears the transposition table and the killers. Called for a
// new game.
func (s *Search) Reset() {
	s.tt.Clear()
	for i := range s.killers {
		s.killers[i][0] = chess.NullMove
		s.killers[i][1] = chess.NullMove
	}
}

// ResizeTable replaces the transposition table with one of the given
// size in megabytes.
func (s *Search) ResizeTable(mb int) {
	s.tt = ttable.New(ttable.EntriesForMB(mb))
	s.log.Infof("hash resized to %d MB (%d entries)", mb, s.tt.Cap())
}

// Nodes returns the node count of the last search.
func (s *Search) Nodes() uint64 {
	return s.nodes
}

// Best searches the position to the given depth and returns the best
// move, or the null move when the position has no legal move. The
// caller's position is not touched, the search works on a copy.
func (s *Search) Best(p *board.Position, depth int) chess.Move {
	if depth <= 0 || depth > MaxDepth {
		depth = DefaultDepth
	}
	work := p.Clone()
	s.nodes = 0

	best := chess.NullMove
	for d := 1; d <= depth; d++ {
		if m, ok := s.root(work, d); ok {
			best = m
			s.log.Debugf("depth %d best %s nodes %d", d, m, s.nodes)
		}
	}
	return best
}

// root searches all legal root moves at the given depth and returns
// the one with the highest score. ok is false when there is no legal
// move.
func (s *Search) root(p *board.Position, depth int) (chess.Move, bool) {
	us := p.SideToMove()
	moves := movegen.Moves(p, s.moves[0][:0])
	s.moves[0] = moves
	s.scores[0] = s.orderScores(p, moves, s.scores[0][:0], 0)

	best := chess.NullMove
	alpha := -Infinity
	for i := range moves {
		s.pickNext(moves, s.scores[0], i)
		m := moves[i]
		p.Make(m)
		if p.InCheck(us) {
			p.Unmake()
			continue
		}
		s.nodes++
		value := -s.alphaBeta(p, depth-1, 1, -Infinity, -alpha)
		p.Unmake()
		if value > alpha || best == chess.NullMove {
			alpha = value
			best = m
		}
	}
	return best, best != chess.NullMove
}

// alphaBeta is the negamax search. Scores are from the view of the
// side to move of p.
func (s *Search) alphaBeta(p *board.Position, depth, ply int, alpha, beta int) int {
	// a deep enough stored result stands in for the whole subtree
	tableMove := chess.NullMove
	if e, ok := s.tt.Probe(p.Key()); ok {
		tableMove = e.Move
		if int(e.Depth) >= depth {
			return int(e.Score)
		}
	}

	if depth == 0 || ply >= MaxDepth {
		return s.quiesce(p, ply, alpha, beta)
	}

	us := p.SideToMove()
	moves := movegen.Moves(p, s.moves[ply][:0])
	s.moves[ply] = moves
	if len(moves) == 0 {
		return s.terminal(p, us, ply)
	}
	scores := s.orderScores(p, moves, s.scores[ply][:0], ply)
	s.scores[ply] = scores
	if tableMove != chess.NullMove {
		for i, m := range moves {
			if m == tableMove {
				scores[i] = orderTableMove
				break
			}
		}
	}

	best := chess.NullMove
	bound := ttable.All
	legal := 0
	for i := range moves {
		s.pickNext(moves, scores, i)
		m := moves[i]
		p.Make(m)
		if p.InCheck(us) {
			p.Unmake()
			continue
		}
		legal++
		s.nodes++
		value := -s.alphaBeta(p, depth-1, ply+1, -beta, -alpha)
		p.Unmake()

		if value > alpha {
			alpha = value
			best = m
			bound = ttable.PV
		}
		if alpha >= beta {
			bound = ttable.Cut
			if !m.IsCapture() {
				s.storeKiller(ply, m)
			}
			break
		}
	}
	if legal == 0 {
		return s.terminal(p, us, ply)
	}

	s.tt.Store(p.Key(), best, alpha, depth, bound)
	return alpha
}

// quiesce settles the tactics at the horizon: the static evaluation
// stands pat as a lower bound, then only captures are searched. This
// terminates because every line of captures runs out of pieces.
func (s *Search) quiesce(p *board.Position, ply int, alpha, beta int) int {
	stand := eval.Evaluate(p)
	if stand > alpha {
		alpha = stand
	}
	if alpha >= beta || ply >= MaxDepth {
		return alpha
	}

	us := p.SideToMove()
	moves := movegen.Captures(p, s.moves[ply][:0])
	s.moves[ply] = moves
	scores := s.orderScores(p, moves, s.scores[ply][:0], ply)
	s.scores[ply] = scores

	for i := range moves {
		s.pickNext(moves, scores, i)
		m := moves[i]
		p.Make(m)
		if p.InCheck(us) {
			p.Unmake()
			continue
		}
		s.nodes++
		value := -s.quiesce(p, ply+1, -beta, -alpha)
		p.Unmake()
		if value > alpha {
			alpha = value
			if alpha >= beta {
				break
			}
		}
	}
	return alpha
}

// terminal scores a position without legal moves: a mate against the
// side to move, kept comparable across depths by the distance from
// the root, or a stalemate draw.
func (s *Search) terminal(p *board.Position, us chess.Color, ply int) int {
	if p.InCheck(us) {
		return -Infinity + ply
	}
	return 0
}

// orderScores computes the ordering score of every move: killers and
// captures in their bands, everything else by the static move score.
func (s *Search) orderScores(p *board.Position, moves []chess.Move, scores []int, ply int) []int {
	k := &s.killers[ply]
	for _, m := range moves {
		sc := 0
		switch {
		case m == k[0] || m == k[1]:
			sc = orderKiller
		case m.IsCapture():
			sc = orderCapture + eval.ScoreMove(p, m)
		default:
			sc = eval.ScoreMove(p, m)
		}
		scores = append(scores, sc)
	}
	return scores
}

// pickNext swaps the best remaining move to position i. A selection
// sort step: with frequent beta cutoffs sorting lazily is cheaper
// than sorting the whole list up front.
func (s *Search) pickNext(moves []chess.Move, scores []int, i int) {
	best := i
	for j := i + 1; j < len(moves); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != i {
		moves[i], moves[best] = moves[best], moves[i]
		scores[i], scores[best] = scores[best], scores[i]
	}
}

// storeKiller prepends the quiet cutoff move to the killer slots of
// the ply, keeping the previous one in the second slot.
func (s *Search) storeKiller(ply int, m chess.Move) {
	k := &s.killers[ply]
	if k[0] != m {
		k[1] = k[0]
		k[0] = m
	}
}
