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

package board

import (
	"github.com/4iy4/athena/internal/chess"
)

// The zobrist key of a position is the XOR of one random per occupied
// piece and square, one per castling rights combination, one per en
// passant file when present, and one marker for Black to move. All
// randoms are pairwise distinct so two features can never cancel each
// other out, and the seed is fixed so keys are stable across runs.
var (
	pieceKey    [12][64]uint64
	castlingKey [16]uint64
	epFileKey   [8]uint64
	sideKey     uint64
)

// castlingTouch lists the rights that expire when a move touches the
// square, for the king and rook home squares.
var castlingTouch [64]chess.CastlingRights

const zobristSeed = 0x3b7e90ca

func init() {
	rng := chess.NewRand(zobristSeed)
	seen := map[uint64]bool{0: true}
	draw := func() uint64 {
		for {
			k := rng.Next()
			if !seen[k] {
				seen[k] = true
				return k
			}
		}
	}

	for pc := range pieceKey {
		for sq := range pieceKey[pc] {
			pieceKey[pc][sq] = draw()
		}
	}
	for i := range castlingKey {
		castlingKey[i] = draw()
	}
	for i := range epFileKey {
		epFileKey[i] = draw()
	}
	sideKey = draw()

	castlingTouch[chess.E1] = chess.WhiteKingSide | chess.WhiteQueenSide
	castlingTouch[chess.H1] = chess.WhiteKingSide
	castlingTouch[chess.A1] = chess.WhiteQueenSide
	castlingTouch[chess.E8] = chess.BlackKingSide | chess.BlackQueenSide
	castlingTouch[chess.H8] = chess.BlackKingSide
	castlingTouch[chess.A8] = chess.BlackQueenSide
}
