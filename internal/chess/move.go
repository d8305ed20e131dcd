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

package chess

// MoveType tags a move with everything make and undo need to know
// beyond origin and target. The promotion piece and the capture
// property travel with the tag itself.
type MoveType uint8

// The fourteen move types. The third bit marks captures, the fourth
// bit marks promotions, so both properties are single mask tests.
const (
	Quiet          MoveType = 0
	DoublePawnPush MoveType = 1
	KingCastle     MoveType = 2
	QueenCastle    MoveType = 3
	Capture        MoveType = 4
	EpCapture      MoveType = 5

	KnightPromotion MoveType = 8
	RookPromotion   MoveType = 9
	BishopPromotion MoveType = 10
	QueenPromotion  MoveType = 11

	KnightPromotionCapture MoveType = 12
	RookPromotionCapture   MoveType = 13
	BishopPromotionCapture MoveType = 14
	QueenPromotionCapture  MoveType = 15
)

// IsCapture reports whether the move type removes an enemy piece,
// including en passant and the capturing promotions. Type values 6
// and 7 are unused.
func (t MoveType) IsCapture() bool {
	return t&4 != 0
}

// IsPromotion reports whether the move type is one of the eight
// promotion variants.
func (t MoveType) IsPromotion() bool {
	return t&8 != 0
}

// IsCastle reports whether the move type is either castle.
func (t MoveType) IsCastle() bool {
	return t == KingCastle || t == QueenCastle
}

var promotionPiece = [4]PieceType{Knight, Rook, Bishop, Queen}

// PromotionPiece returns the piece a pawn promotes to. Only
// meaningful for the promotion move types.
func (t MoveType) PromotionPiece() PieceType {
	return promotionPiece[t&3]
}

// PromotionType returns the promotion move type for the given piece
// type, capturing or not.
func PromotionType(pt PieceType, capture bool) MoveType {
	var t MoveType
	switch pt {
	case Knight:
		t = KnightPromotion
	case Rook:
		t = RookPromotion
	case Bishop:
		t = BishopPromotion
	default:
		t = QueenPromotion
	}
	if capture {
		t |= 4
	}
	return t
}

// Move is a 16-bit packed move: the move type in the high four bits,
// the target square in the middle six and the origin square in the
// low six.
//
//	bits  15..12  type
//	bits  11..6   target
//	bits   5..0   origin
type Move uint16

// NullMove is the empty move. It is not a legal move of any position.
const NullMove Move = 0

// NewMove packs origin, target and move type into a move.
func NewMove(from, to Square, t MoveType) Move {
	return Move(t)<<12 | Move(to)<<6 | Move(from)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3f)
}

// To returns the target square.
func (m Move) To() Square {
	return Square(m >> 6 & 0x3f)
}

// Type returns the move type.
func (m Move) Type() MoveType {
	return MoveType(m >> 12)
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Type().IsCapture()
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type().IsPromotion()
}

// String returns the move in long algebraic notation, with a lower
// case promotion suffix, e.g. "e2e4" or "a7a8q". The null move is
// "0000".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Type().PromotionPiece().Letter())
	}
	return s
}
