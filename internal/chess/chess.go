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

// Package chess holds the primitive data types of the engine: squares,
// colors, pieces, moves, bitboards and the precomputed attack tables
// (including the magic bitboard tables for the sliding pieces).
package chess

// Square is a board square 0..63 in little-endian rank-file order,
// A1 = 0, H1 = 7, A8 = 56, H8 = 63.
type Square uint8

// NoSquare marks the absence of a square.
const NoSquare Square = 64

// The 64 squares of the board.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareAt builds a square from file and rank, both 0..7.
func SquareAt(file, rank int) Square {
	return Square(rank<<3 | file)
}

// File returns the file of the square, 0..7 for a..h.
func (sq Square) File() int {
	return int(sq & 7)
}

// Rank returns the rank of the square, 0..7 for 1..8.
func (sq Square) Rank() int {
	return int(sq >> 3)
}

// FlipRank mirrors the square vertically, same file on the opposite
// rank (A1 <-> A8).
func (sq Square) FlipRank() Square {
	return sq ^ 56
}

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq < 64
}

// BB returns a bitboard with only this square set.
func (sq Square) BB() Bitboard {
	return Bitboard(1) << sq
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq&7), byte('1' + sq>>3)})
}

// SquareFromString reads a square from two characters like "e4".
// Returns NoSquare if the string is not a square.
func SquareFromString(s string) Square {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1'))
}

// Color of a side, White or Black.
type Color uint8

// The two sides.
const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}
