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

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares as a 64-bit word, bit i set means the
// predicate holds on square i.
type Bitboard uint64

// Count returns the number of set squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// First returns the lowest set square. Undefined for the empty board.
func (b Bitboard) First() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopFirst returns the lowest set square and clears it from the set.
func (b *Bitboard) PopFirst() Square {
	sq := b.First()
	*b &= *b - 1
	return sq
}

// Has reports whether the square is in the set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.BB() != 0
}

// Set adds the square to the set.
func (b *Bitboard) Set(sq Square) {
	*b |= sq.BB()
}

// Clear removes the square from the set.
func (b *Bitboard) Clear(sq Square) {
	*b &^= sq.BB()
}

// String draws the set as an 8x8 diagram, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file <= 7; file++ {
			if b.Has(SquareAt(file, rank)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// precomputed attack sets of the non sliding pieces
var (
	knightAttack [64]Bitboard
	kingAttack   [64]Bitboard
	pawnAttack   [2][64]Bitboard
)

// KnightAttacks returns the attack set of a knight on sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttack[sq]
}

// KingAttacks returns the attack set of a king on sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttack[sq]
}

// PawnAttacks returns the squares a pawn of the given color on sq
// attacks diagonally. Pushes are not included.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttack[c][sq]
}

// jump adds the square file+df, rank+dr to the board if it exists.
func jump(b *Bitboard, sq Square, df, dr int) {
	f, r := sq.File()+df, sq.Rank()+dr
	if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		b.Set(SquareAt(f, r))
	}
}

func init() {
	for sq := A1; sq <= H8; sq++ {
		var n, k Bitboard
		for _, d := range [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}} {
			jump(&n, sq, d[0], d[1])
		}
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df != 0 || dr != 0 {
					jump(&k, sq, df, dr)
				}
			}
		}
		knightAttack[sq] = n
		kingAttack[sq] = k

		var pw, pb Bitboard
		jump(&pw, sq, -1, 1)
		jump(&pw, sq, 1, 1)
		jump(&pb, sq, -1, -1)
		jump(&pb, sq, 1, -1)
		pawnAttack[White][sq] = pw
		pawnAttack[Black][sq] = pb
	}
}
