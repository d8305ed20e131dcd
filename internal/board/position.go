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

// Package board holds the position: piece placement as bitboards and
// a square indexed array, the side to move, and a stack of the
// irreversible state (castling rights, en passant file, halfmove
// clock, captured piece) whose top always describes the current
// position. Make pushes a snapshot, Unmake pops it.
package board

import (
	"fmt"

	"github.com/4iy4/athena/internal/chess"
)

// Position is a chess position. Create one with NewPosition or
// FromFEN and change it only through Place, Remove, Make and Unmake.
type Position struct {
	byColor [2]chess.Bitboard
	byType  [chess.PieceTypes]chess.Bitboard
	squares [64]chess.Piece

	sideToMove chess.Color
	fullmove   int

	// the top entry is the current irreversible state
	states []state

	key uint64
}

// the en passant file carries a presence flag in bit 3
const epPresent = 0x8

// state is one snapshot of the irreversible part of the position
// plus what Unmake needs to reverse the move that created it.
type state struct {
	move     chess.Move
	captured chess.Piece
	castling chess.CastlingRights
	ep       uint8
	halfmove uint8
	key      uint64
}

func (p *Position) top() *state {
	return &p.states[len(p.states)-1]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() chess.Color {
	return p.sideToMove
}

// Key returns the zobrist key of the position.
func (p *Position) Key() uint64 {
	return p.key
}

// FullMoves returns the fullmove counter, starting at 1 and counted
// up after each Black move.
func (p *Position) FullMoves() int {
	return p.fullmove
}

// HalfMoveClock returns the number of halfmoves since the last pawn
// move or capture.
func (p *Position) HalfMoveClock() int {
	return int(p.top().halfmove)
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.top().castling
}

// EnPassant returns the en passant target square if the last move was
// a double pawn push. Only the file is stored, the rank follows from
// the side to move.
func (p *Position) EnPassant() (chess.Square, bool) {
	st := p.top()
	if st.ep&epPresent == 0 {
		return chess.NoSquare, false
	}
	rank := 5
	if p.sideToMove == chess.Black {
		rank = 2
	}
	return chess.SquareAt(int(st.ep&7), rank), true
}

// PieceAt returns the piece on the square or NoPiece.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.squares[sq]
}

// ColorBB returns the occupancy of one color.
func (p *Position) ColorBB(c chess.Color) chess.Bitboard {
	return p.byColor[c]
}

// TypeBB returns the occupancy of one piece type of both colors.
func (p *Position) TypeBB(pt chess.PieceType) chess.Bitboard {
	return p.byType[pt]
}

// Pieces returns the squares holding pieces of the given color and type.
func (p *Position) Pieces(c chess.Color, pt chess.PieceType) chess.Bitboard {
	return p.byColor[c] & p.byType[pt]
}

// Occupied returns the squares holding any piece.
func (p *Position) Occupied() chess.Bitboard {
	return p.byColor[chess.White] | p.byColor[chess.Black]
}

// KingSquare returns the square of the king of the given color.
func (p *Position) KingSquare(c chess.Color) chess.Square {
	return p.Pieces(c, chess.King).First()
}

// Place puts the piece on the square. A piece already on the square
// is removed first so the bitboards stay consistent.
func (p *Position) Place(pc chess.Piece, sq chess.Square) {
	if p.squares[sq] != chess.NoPiece {
		p.Remove(sq)
	}
	p.squares[sq] = pc
	p.byColor[pc.Color()] |= sq.BB()
	p.byType[pc.Type()] |= sq.BB()
	p.key ^= pieceKey[pc][sq]
}

// Remove takes the piece off the square and returns it. Removing from
// an empty square is a no-op returning NoPiece.
func (p *Position) Remove(sq chess.Square) chess.Piece {
	pc := p.squares[sq]
	if pc == chess.NoPiece {
		return pc
	}
	p.squares[sq] = chess.NoPiece
	p.byColor[pc.Color()] &^= sq.BB()
	p.byType[pc.Type()] &^= sq.BB()
	p.key ^= pieceKey[pc][sq]
	return pc
}

func (p *Position) movePiece(from, to chess.Square) {
	p.Place(p.Remove(from), to)
}

// captureOn removes the captured piece. Capturing a king means an
// illegal move survived to make, which is a broken invariant.
func (p *Position) captureOn(sq chess.Square) chess.Piece {
	pc := p.Remove(sq)
	if pc.Type() == chess.King {
		panic(fmt.Sprintf("king captured on %s", sq))
	}
	return pc
}

// epVictim is the square of the pawn removed by an en passant capture
// landing on to.
func epVictim(us chess.Color, to chess.Square) chess.Square {
	if us == chess.White {
		return to - 8
	}
	return to + 8
}

// Make applies the move to the position. It pushes a new snapshot of
// the irreversible state and performs the move type specific
// mutations. The move must be pseudo legal.
func (p *Position) Make(m chess.Move) {
	prevKey := p.key
	p.states = append(p.states, *p.top())
	st := p.top()
	st.move = m
	st.captured = chess.NoPiece
	st.key = prevKey

	from, to := m.From(), m.To()
	us := p.sideToMove
	mover := p.squares[from]

	// the en passant option expires with any move
	if st.ep&epPresent != 0 {
		p.key ^= epFileKey[st.ep&7]
		st.ep = 0
	}

	switch m.Type() {
	case chess.Quiet:
		if mover.Type() == chess.Pawn {
			st.halfmove = 0
		} else {
			st.halfmove++
		}
		p.movePiece(from, to)

	case chess.DoublePawnPush:
		st.halfmove = 0
		p.movePiece(from, to)
		st.ep = epPresent | uint8(from.File())
		p.key ^= epFileKey[from.File()]

	case chess.KingCastle, chess.QueenCastle:
		st.halfmove++
		p.movePiece(from, to)
		switch to {
		case chess.G1:
			p.movePiece(chess.H1, chess.F1)
		case chess.C1:
			p.movePiece(chess.A1, chess.D1)
		case chess.G8:
			p.movePiece(chess.H8, chess.F8)
		case chess.C8:
			p.movePiece(chess.A8, chess.D8)
		}

	case chess.Capture:
		st.captured = p.captureOn(to)
		st.halfmove = 0
		p.movePiece(from, to)

	case chess.EpCapture:
		st.captured = p.captureOn(epVictim(us, to))
		st.halfmove = 0
		p.movePiece(from, to)

	default: // the eight promotion types
		if m.IsCapture() {
			st.captured = p.captureOn(to)
		}
		st.halfmove = 0
		p.Remove(from)
		p.Place(chess.NewPiece(m.Type().PromotionPiece(), us), to)
	}

	// castling rights expire when the king or a rook home square is
	// touched, by the mover or by a capture on it
	if gone := castlingTouch[from] | castlingTouch[to]; st.castling&gone != 0 {
		p.key ^= castlingKey[st.castling]
		st.castling &^= gone
		p.key ^= castlingKey[st.castling]
	}

	if us == chess.Black {
		p.fullmove++
	}
	p.sideToMove = us.Other()
	p.key ^= sideKey
}

// Unmake reverses the last move made and pops its snapshot. The
// captured piece is taken from the snapshot, never from the board.
func (p *Position) Unmake() {
	st := p.top()
	m := st.move
	from, to := m.From(), m.To()

	p.sideToMove = p.sideToMove.Other()
	us := p.sideToMove
	if us == chess.Black {
		p.fullmove--
	}

	switch m.Type() {
	case chess.Quiet, chess.DoublePawnPush:
		p.movePiece(to, from)

	case chess.KingCastle, chess.QueenCastle:
		p.movePiece(to, from)
		switch to {
		case chess.G1:
			p.movePiece(chess.F1, chess.H1)
		case chess.C1:
			p.movePiece(chess.D1, chess.A1)
		case chess.G8:
			p.movePiece(chess.F8, chess.H8)
		case chess.C8:
			p.movePiece(chess.D8, chess.A8)
		}

	case chess.Capture:
		p.movePiece(to, from)
		p.Place(st.captured, to)

	case chess.EpCapture:
		p.movePiece(to, from)
		p.Place(st.captured, epVictim(us, to))

	default: // promotions
		p.Remove(to)
		p.Place(chess.NewPiece(chess.Pawn, us), from)
		if st.captured != chess.NoPiece {
			p.Place(st.captured, to)
		}
	}

	p.key = st.key
	p.states = p.states[:len(p.states)-1]
}

// IsAttacked reports whether the square is attacked by any piece of
// the given color. Each piece type is probed from the target square
// outward, so the board is never scanned.
func (p *Position) IsAttacked(sq chess.Square, by chess.Color) bool {
	if chess.PawnAttacks(by.Other(), sq)&p.Pieces(by, chess.Pawn) != 0 {
		return true
	}
	if chess.KnightAttacks(sq)&p.Pieces(by, chess.Knight) != 0 {
		return true
	}
	if chess.KingAttacks(sq)&p.Pieces(by, chess.King) != 0 {
		return true
	}
	occ := p.Occupied()
	straight := p.Pieces(by, chess.Rook) | p.Pieces(by, chess.Queen)
	if straight != 0 && chess.RookAttacks(sq, occ)&straight != 0 {
		return true
	}
	diagonal := p.Pieces(by, chess.Bishop) | p.Pieces(by, chess.Queen)
	return diagonal != 0 && chess.BishopAttacks(sq, occ)&diagonal != 0
}

// InCheck reports whether the king of the given color is attacked.
func (p *Position) InCheck(c chess.Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Other())
}

// Clone returns an independent deep copy of the position.
func (p *Position) Clone() *Position {
	q := *p
	q.states = append([]state(nil), p.states...)
	return &q
}
