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

// PieceType is the kind of a piece independent of its color.
type PieceType uint8

// The six piece types.
const (
	Pawn PieceType = iota
	Knight
	Rook
	Bishop
	Queen
	King
	PieceTypes = 6
)

// static piece values in centipawns
var pieceTypeValue = [PieceTypes]int{100, 320, 500, 350, 1000, 10000}

// Value returns the static value of the piece type.
func (pt PieceType) Value() int {
	return pieceTypeValue[pt]
}

var pieceTypeLetter = [PieceTypes]byte{'p', 'n', 'r', 'b', 'q', 'k'}

// Letter returns the lower case letter of the piece type as used in
// FEN strings and long algebraic promotion suffixes.
func (pt PieceType) Letter() byte {
	return pieceTypeLetter[pt]
}

// PieceTypeFromLetter reads a piece type from a lower case letter.
// Returns PieceTypes (an invalid type) when the letter is unknown.
func PieceTypeFromLetter(l byte) PieceType {
	for pt, c := range pieceTypeLetter {
		if c == l {
			return PieceType(pt)
		}
	}
	return PieceTypes
}

// Piece is a colored piece encoded as type*2 + color. This gives the
// twelve real pieces the values 0..11. NoPiece is the sentinel used
// in the square indexed board array.
type Piece uint8

// NoPiece marks an empty square on the board array.
const NoPiece Piece = 12

// NewPiece builds a piece from its type and color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece(pt)<<1 | Piece(c)
}

// Type returns the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> 1)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	return Color(p & 1)
}

// Valid reports whether p is one of the twelve real pieces.
func (p Piece) Valid() bool {
	return p < NoPiece
}

// Letter returns the FEN letter of the piece, upper case for White.
func (p Piece) Letter() byte {
	l := p.Type().Letter()
	if p.Color() == White {
		return l - 'a' + 'A'
	}
	return l
}

// PieceFromLetter reads a piece from its FEN letter. Returns NoPiece
// when the letter is unknown.
func PieceFromLetter(l byte) Piece {
	c := Black
	if l >= 'A' && l <= 'Z' {
		c = White
		l = l - 'A' + 'a'
	}
	pt := PieceTypeFromLetter(l)
	if pt == PieceTypes {
		return NoPiece
	}
	return NewPiece(pt, c)
}

func (p Piece) String() string {
	if !p.Valid() {
		return "-"
	}
	return string(p.Letter())
}
