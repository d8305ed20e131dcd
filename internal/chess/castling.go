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

// CastlingRights is a set of the four castling rights. Each right
// occupies bit 2*color+side where side 0 is the queen side and side 1
// the king side.
type CastlingRights uint8

// The four rights and their combinations.
const (
	NoCastling     CastlingRights = 0
	WhiteQueenSide CastlingRights = 1 << 0
	WhiteKingSide  CastlingRights = 1 << 1
	BlackQueenSide CastlingRights = 1 << 2
	BlackKingSide  CastlingRights = 1 << 3
	AllCastling                   = WhiteQueenSide | WhiteKingSide | BlackQueenSide | BlackKingSide
)

// CastlingRight returns the single right of the given color and side.
func CastlingRight(c Color, kingSide bool) CastlingRights {
	side := 0
	if kingSide {
		side = 1
	}
	return 1 << (2*int(c) + side)
}

// Has reports whether all rights in r2 are present in r.
func (r CastlingRights) Has(r2 CastlingRights) bool {
	return r&r2 == r2
}

// String returns the rights in FEN notation, "-" when empty.
func (r CastlingRights) String() string {
	if r == NoCastling {
		return "-"
	}
	s := ""
	if r.Has(WhiteKingSide) {
		s += "K"
	}
	if r.Has(WhiteQueenSide) {
		s += "Q"
	}
	if r.Has(BlackKingSide) {
		s += "k"
	}
	if r.Has(BlackQueenSide) {
		s += "q"
	}
	return s
}
