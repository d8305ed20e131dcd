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

// Package movegen generates moves for a position. Generation is
// pseudo legal: the moves respect piece movement, castling, en
// passant and promotion rules but may leave the own king in check.
// IsLegal filters by making the move and looking at the king.
package movegen

import (
	"fmt"

	"github.com/4iy4/athena/internal/board"
	"github.com/4iy4/athena/internal/chess"
)

// Moves appends all pseudo legal moves of the side to move to dst and
// returns it. Pass a reused buffer to avoid allocation in the search.
func Moves(p *board.Position, dst []chess.Move) []chess.Move {
	dst = pawnMoves(p, dst, false)
	dst = pieceMoves(p, dst, false)
	dst = castleMoves(p, dst)
	return dst
}

// Captures appends the pseudo legal capturing moves only, including
// en passant and capturing promotions. Used by the quiescence search.
func Captures(p *board.Position, dst []chess.Move) []chess.Move {
	dst = pawnMoves(p, dst, true)
	dst = pieceMoves(p, dst, true)
	return dst
}

// IsLegal reports whether the pseudo legal move leaves the mover's
// king unattacked, by making the move and undoing it.
func IsLegal(p *board.Position, m chess.Move) bool {
	us := p.SideToMove()
	p.Make(m)
	ok := !p.InCheck(us)
	p.Unmake()
	return ok
}

// Legal returns all legal moves of the side to move.
func Legal(p *board.Position) []chess.Move {
	var out []chess.Move
	for _, m := range Moves(p, nil) {
		if IsLegal(p, m) {
			out = append(out, m)
		}
	}
	return out
}

// FromLAN resolves a move in long algebraic notation ("e2e4",
// "a7a8q") against the position by scanning the pseudo legal moves
// for a matching string.
func FromLAN(p *board.Position, s string) (chess.Move, error) {
	for _, m := range Moves(p, nil) {
		if m.String() == s {
			return m, nil
		}
	}
	return chess.NullMove, fmt.Errorf("move %q does not match this position", s)
}

// CountPseudo counts the pseudo legal moves of the given color
// without materializing them. Promotion choices count once per
// target, castling is ignored. This is the mobility term of the
// evaluation.
func CountPseudo(p *board.Position, c chess.Color) int {
	own := p.ColorBB(c)
	occ := p.Occupied()
	enemy := p.ColorBB(c.Other())

	n := 0
	for pt := chess.Knight; pt <= chess.King; pt++ {
		for bb := p.Pieces(c, pt); bb != 0; {
			n += (chess.AttacksOf(pt, bb.PopFirst(), occ) &^ own).Count()
		}
	}

	up, start := 8, 1
	if c == chess.Black {
		up, start = -8, 6
	}
	for bb := p.Pieces(c, chess.Pawn); bb != 0; {
		from := bb.PopFirst()
		n += (chess.PawnAttacks(c, from) & enemy).Count()
		to := chess.Square(int(from) + up)
		if !occ.Has(to) {
			n++
			if from.Rank() == start && !occ.Has(chess.Square(int(to)+up)) {
				n++
			}
		}
	}
	return n
}

var promotionOrder = [4]chess.PieceType{chess.Queen, chess.Knight, chess.Rook, chess.Bishop}

func pawnMoves(p *board.Position, dst []chess.Move, capturesOnly bool) []chess.Move {
	us := p.SideToMove()
	occ := p.Occupied()
	enemy := p.ColorBB(us.Other())
	ep, hasEP := p.EnPassant()

	up, start, promo := 8, 1, 7
	if us == chess.Black {
		up, start, promo = -8, 6, 0
	}

	for bb := p.Pieces(us, chess.Pawn); bb != 0; {
		from := bb.PopFirst()

		for caps := chess.PawnAttacks(us, from) & enemy; caps != 0; {
			to := caps.PopFirst()
			if to.Rank() == promo {
				for _, pt := range promotionOrder {
					dst = append(dst, chess.NewMove(from, to, chess.PromotionType(pt, true)))
				}
			} else {
				dst = append(dst, chess.NewMove(from, to, chess.Capture))
			}
		}
		if hasEP && chess.PawnAttacks(us, from).Has(ep) {
			dst = append(dst, chess.NewMove(from, ep, chess.EpCapture))
		}
		if capturesOnly {
			continue
		}

		to := chess.Square(int(from) + up)
		if occ.Has(to) {
			continue
		}
		if to.Rank() == promo {
			for _, pt := range promotionOrder {
				dst = append(dst, chess.NewMove(from, to, chess.PromotionType(pt, false)))
			}
			continue
		}
		dst = append(dst, chess.NewMove(from, to, chess.Quiet))
		if from.Rank() == start {
			if to2 := chess.Square(int(to) + up); !occ.Has(to2) {
				dst = append(dst, chess.NewMove(from, to2, chess.DoublePawnPush))
			}
		}
	}
	return dst
}

func pieceMoves(p *board.Position, dst []chess.Move, capturesOnly bool) []chess.Move {
	us := p.SideToMove()
	own := p.ColorBB(us)
	occ := p.Occupied()
	enemy := p.ColorBB(us.Other())

	for pt := chess.Knight; pt <= chess.King; pt++ {
		for bb := p.Pieces(us, pt); bb != 0; {
			from := bb.PopFirst()
			att := chess.AttacksOf(pt, from, occ) &^ own
			for caps := att & enemy; caps != 0; {
				dst = append(dst, chess.NewMove(from, caps.PopFirst(), chess.Capture))
			}
			if capturesOnly {
				continue
			}
			for quiets := att &^ occ; quiets != 0; {
				dst = append(dst, chess.NewMove(from, quiets.PopFirst(), chess.Quiet))
			}
		}
	}
	return dst
}

// castleMoves emits the castle moves whose right is present, whose
// path is empty and whose king origin and transit square are not
// attacked. An attacked target square is caught by the legality
// filter like for any other king move.
func castleMoves(p *board.Position, dst []chess.Move) []chess.Move {
	us := p.SideToMove()
	them := us.Other()
	occ := p.Occupied()
	cr := p.CastlingRights()

	if us == chess.White {
		if cr.Has(chess.WhiteKingSide) &&
			occ&(chess.F1.BB()|chess.G1.BB()) == 0 &&
			!p.IsAttacked(chess.E1, them) && !p.IsAttacked(chess.F1, them) {
			dst = append(dst, chess.NewMove(chess.E1, chess.G1, chess.KingCastle))
		}
		if cr.Has(chess.WhiteQueenSide) &&
			occ&(chess.B1.BB()|chess.C1.BB()|chess.D1.BB()) == 0 &&
			!p.IsAttacked(chess.E1, them) && !p.IsAttacked(chess.D1, them) {
			dst = append(dst, chess.NewMove(chess.E1, chess.C1, chess.QueenCastle))
		}
		return dst
	}
	if cr.Has(chess.BlackKingSide) &&
		occ&(chess.F8.BB()|chess.G8.BB()) == 0 &&
		!p.IsAttacked(chess.E8, them) && !p.IsAttacked(chess.F8, them) {
		dst = append(dst, chess.NewMove(chess.E8, chess.G8, chess.KingCastle))
	}
	if cr.Has(chess.BlackQueenSide) &&
		occ&(chess.B8.BB()|chess.C8.BB()|chess.D8.BB()) == 0 &&
		!p.IsAttacked(chess.E8, them) && !p.IsAttacked(chess.D8, them) {
		dst = append(dst, chess.NewMove(chess.E8, chess.C8, chess.QueenCastle))
	}
	return dst
}
