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

// Package eval scores positions and moves. Position scores are side
// relative, positive is good for the side to move. Move scores are an
// ordering signal for the search, not a position value.
package eval

import (
	"github.com/4iy4/athena/internal/board"
	"github.com/4iy4/athena/internal/chess"
	"github.com/4iy4/athena/internal/movegen"
)

// a side whose piece count drops below this uses the king's endgame
// table
const endgamePieces = 5

// Evaluate returns a static score of the position from the view of
// the side to move. It is a weighted sum of material, mobility and
// piece placement.
func Evaluate(p *board.Position) int {
	us := p.SideToMove()
	them := us.Other()

	material := 0
	for pt := chess.Pawn; pt <= chess.King; pt++ {
		material += pt.Value() * (p.Pieces(us, pt).Count() - p.Pieces(them, pt).Count())
	}

	mobility := movegen.CountPseudo(p, us) - movegen.CountPseudo(p, them)

	placement := 0
	for c := chess.White; c <= chess.Black; c++ {
		endgame := p.ColorBB(c).Count() < endgamePieces
		sign := 1
		if c != us {
			sign = -1
		}
		for bb := p.ColorBB(c); bb != 0; {
			sq := bb.PopFirst()
			placement += sign * PieceSquare(p.PieceAt(sq), sq, endgame)
		}
	}

	return 4*material + 2*mobility + placement
}

// The captured piece counts with its own value, mvvAttacker values the
// capturing piece upside down (King->Pawn ... Pawn->King), so the
// cheapest attacker on the most valuable victim sorts first.
var mvvAttacker = [chess.PieceTypes]int{10000, 1000, 350, 500, 320, 100}

// ScoreMove returns an ordering score for a single move of the
// position: how promising it looks before it has been searched.
func ScoreMove(p *board.Position, m chess.Move) int {
	from, to := m.From(), m.To()
	mover := p.PieceAt(from)
	mt := mover.Type()
	us := mover.Color()
	them := us.Other()

	score := 0

	if m.IsCapture() {
		victim := chess.Pawn // en passant
		if m.Type() != chess.EpCapture {
			victim = p.PieceAt(to).Type()
		}
		score += victim.Value() + mvvAttacker[mt]
	}

	// lift the mover off its origin so x-ray attackers count, then
	// look at both squares
	p.Remove(from)
	if p.IsAttacked(to, them) {
		// walking into a defended square risks losing the mover
		score -= mt.Value()
	} else {
		score++
	}
	if p.IsAttacked(from, them) {
		// bonus for getting out of an attack
		score += 2 * mt.Value()
	}
	p.Place(mover, from)

	endgame := p.ColorBB(us).Count() < endgamePieces
	score += PieceSquare(mover, to, endgame) - PieceSquare(mover, from, endgame)

	if mt == chess.Pawn {
		// push pawns forward
		if us == chess.White {
			score += to.Rank()
		} else {
			score += 7 - to.Rank()
		}
	} else {
		// give the other pieces room
		score += chess.AttacksOf(mt, to, 0).Count()
	}

	return score
}
