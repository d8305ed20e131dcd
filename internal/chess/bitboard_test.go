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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardOps(t *testing.T) {
	var b Bitboard
	b.Set(E4)
	b.Set(A1)
	b.Set(H8)
	assert.Equal(t, 3, b.Count())
	assert.True(t, b.Has(E4))
	assert.False(t, b.Has(E5))

	assert.Equal(t, A1, b.First())
	assert.Equal(t, A1, b.PopFirst())
	assert.Equal(t, E4, b.PopFirst())
	assert.Equal(t, H8, b.PopFirst())
	assert.Equal(t, 0, b.Count())

	b.Set(C3)
	b.Clear(C3)
	assert.Equal(t, Bitboard(0), b)
}

func TestSquare(t *testing.T) {
	assert.Equal(t, E4, SquareAt(4, 3))
	assert.Equal(t, 4, E4.File())
	assert.Equal(t, 3, E4.Rank())
	assert.Equal(t, "e4", E4.String())
	assert.Equal(t, E4, SquareFromString("e4"))
	assert.Equal(t, NoSquare, SquareFromString("j9"))
	assert.Equal(t, A8, A1.FlipRank())
	assert.Equal(t, E2, E7.FlipRank())
}

func TestKnightAttacks(t *testing.T) {
	b := KnightAttacks(A1)
	assert.Equal(t, 2, b.Count())
	assert.True(t, b.Has(B3))
	assert.True(t, b.Has(C2))

	assert.Equal(t, 8, KnightAttacks(E4).Count())
}

func TestKingAttacks(t *testing.T) {
	assert.Equal(t, 3, KingAttacks(A1).Count())
	assert.Equal(t, 8, KingAttacks(E4).Count())
	assert.Equal(t, 5, KingAttacks(E1).Count())
}

func TestPawnAttacks(t *testing.T) {
	b := PawnAttacks(White, A2)
	assert.Equal(t, 1, b.Count())
	assert.True(t, b.Has(B3))

	b = PawnAttacks(White, E2)
	assert.Equal(t, 2, b.Count())
	assert.True(t, b.Has(D3))
	assert.True(t, b.Has(F3))

	b = PawnAttacks(Black, H7)
	assert.Equal(t, 1, b.Count())
	assert.True(t, b.Has(G6))
}
