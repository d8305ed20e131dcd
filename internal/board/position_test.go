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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/4iy4/athena/internal/chess"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// checkConsistent verifies the board array and the two bitboard
// families describe the same placement.
func checkConsistent(t *testing.T, p *Position) {
	t.Helper()
	assert.Equal(t, chess.Bitboard(0), p.ColorBB(chess.White)&p.ColorBB(chess.Black))
	occupied := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		pc := p.PieceAt(sq)
		if pc == chess.NoPiece {
			assert.False(t, p.Occupied().Has(sq), "empty square %s in occupancy", sq)
			continue
		}
		occupied++
		assert.True(t, p.ColorBB(pc.Color()).Has(sq), "square %s missing in color bb", sq)
		assert.True(t, p.TypeBB(pc.Type()).Has(sq), "square %s missing in type bb", sq)
		assert.False(t, p.ColorBB(pc.Color().Other()).Has(sq))
	}
	assert.Equal(t, occupied, p.Occupied().Count())
	assert.Equal(t, 1, p.Pieces(chess.White, chess.King).Count())
	assert.Equal(t, 1, p.Pieces(chess.Black, chess.King).Count())
}

func TestStartPosition(t *testing.T) {
	p := NewPosition()
	checkConsistent(t, p)

	assert.Equal(t, chess.White, p.SideToMove())
	assert.Equal(t, chess.AllCastling, p.CastlingRights())
	_, hasEP := p.EnPassant()
	assert.False(t, hasEP)
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoves())

	assert.Equal(t, 8, p.Pieces(chess.White, chess.Pawn).Count())
	assert.Equal(t, 8, p.Pieces(chess.Black, chess.Pawn).Count())
	assert.Equal(t, 2, p.Pieces(chess.White, chess.Rook).Count())
	assert.Equal(t, 32, p.Occupied().Count())
	assert.Equal(t, chess.E1, p.KingSquare(chess.White))
	assert.Equal(t, chess.E8, p.KingSquare(chess.Black))

	assert.Equal(t, StartFEN, p.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		StartFEN,
		kiwipete,
		"8/P7/8/8/8/8/8/4k2K w - - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	} {
		p, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
		checkConsistent(t, p)
	}
}

func TestFENErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8 w KQkq -",                            // missing ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",      // bad piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",      // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",      // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1",     // bad ep
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",     // 9 pawns in rank
	} {
		_, err := FromFEN(fen)
		assert.Error(t, err, fen)
	}
}

func TestEnPassantSquare(t *testing.T) {
	p := NewPosition()
	p.Make(chess.NewMove(chess.E2, chess.E4, chess.DoublePawnPush))
	ep, ok := p.EnPassant()
	assert.True(t, ok)
	assert.Equal(t, chess.E3, ep)

	p.Make(chess.NewMove(chess.D7, chess.D5, chess.DoublePawnPush))
	ep, ok = p.EnPassant()
	assert.True(t, ok)
	assert.Equal(t, chess.D6, ep)

	// any other move expires the option
	p.Make(chess.NewMove(chess.G1, chess.F3, chess.Quiet))
	_, ok = p.EnPassant()
	assert.False(t, ok)
}

// makeUnmake plays the move and takes it back, expecting the position
// to be restored bit for bit.
func makeUnmake(t *testing.T, fen string, m chess.Move) {
	t.Helper()
	p, err := FromFEN(fen)
	assert.NoError(t, err)
	before := *p.top()
	fenBefore := p.FEN()
	keyBefore := p.Key()

	p.Make(m)
	checkConsistent(t, p)
	p.Unmake()
	checkConsistent(t, p)

	assert.Equal(t, fenBefore, p.FEN())
	assert.Equal(t, keyBefore, p.Key())
	assert.Equal(t, before, *p.top())
}

func TestMakeUnmake(t *testing.T) {
	// quiet move and double push
	makeUnmake(t, StartFEN, chess.NewMove(chess.G1, chess.F3, chess.Quiet))
	makeUnmake(t, StartFEN, chess.NewMove(chess.E2, chess.E4, chess.DoublePawnPush))

	// captures
	makeUnmake(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		chess.NewMove(chess.E4, chess.D5, chess.Capture))

	// both castles for both sides
	castleFEN := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	makeUnmake(t, castleFEN, chess.NewMove(chess.E1, chess.G1, chess.KingCastle))
	makeUnmake(t, castleFEN, chess.NewMove(chess.E1, chess.C1, chess.QueenCastle))
	castleFENBlack := "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"
	makeUnmake(t, castleFENBlack, chess.NewMove(chess.E8, chess.G8, chess.KingCastle))
	makeUnmake(t, castleFENBlack, chess.NewMove(chess.E8, chess.C8, chess.QueenCastle))

	// en passant
	makeUnmake(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		chess.NewMove(chess.E5, chess.F6, chess.EpCapture))

	// promotion with and without capture
	makeUnmake(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
		chess.NewMove(chess.A7, chess.A8, chess.QueenPromotion))
	makeUnmake(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
		chess.NewMove(chess.A7, chess.B8, chess.RookPromotionCapture))
}

func TestMakeUpdatesState(t *testing.T) {
	p := NewPosition()
	p.Make(chess.NewMove(chess.E2, chess.E4, chess.DoublePawnPush))
	assert.Equal(t, chess.Black, p.SideToMove())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoves())
	assert.Equal(t, chess.NoPiece, p.PieceAt(chess.E2))
	assert.Equal(t, chess.NewPiece(chess.Pawn, chess.White), p.PieceAt(chess.E4))

	p.Make(chess.NewMove(chess.G8, chess.F6, chess.Quiet))
	assert.Equal(t, chess.White, p.SideToMove())
	assert.Equal(t, 1, p.HalfMoveClock())
	assert.Equal(t, 2, p.FullMoves())
}

func TestCastlingRightsExpire(t *testing.T) {
	p, _ := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// a king move drops both rights of its side
	p.Make(chess.NewMove(chess.E1, chess.D1, chess.Quiet))
	assert.Equal(t, chess.BlackKingSide|chess.BlackQueenSide, p.CastlingRights())
	p.Unmake()
	assert.Equal(t, chess.AllCastling, p.CastlingRights())

	// a rook move drops its own side's right
	p.Make(chess.NewMove(chess.A1, chess.A2, chess.Quiet))
	assert.False(t, p.CastlingRights().Has(chess.WhiteQueenSide))
	assert.True(t, p.CastlingRights().Has(chess.WhiteKingSide))
	p.Unmake()

	// capturing a rook on its home corner drops the victim's right
	p2, _ := FromFEN("r3k2r/8/8/8/8/6n1/8/R3K2R b KQkq - 0 1")
	p2.Make(chess.NewMove(chess.G3, chess.H1, chess.Capture))
	assert.False(t, p2.CastlingRights().Has(chess.WhiteKingSide))
	assert.True(t, p2.CastlingRights().Has(chess.WhiteQueenSide))
}

func TestZobristDeterminism(t *testing.T) {
	// the same FEN always produces the same key
	p1, _ := FromFEN(kiwipete)
	p2, _ := FromFEN(kiwipete)
	assert.Equal(t, p1.Key(), p2.Key())

	// reaching the same placement by different move orders produces
	// the same key
	a := NewPosition()
	a.Make(chess.NewMove(chess.G1, chess.F3, chess.Quiet))
	a.Make(chess.NewMove(chess.G8, chess.F6, chess.Quiet))
	a.Make(chess.NewMove(chess.B1, chess.C3, chess.Quiet))
	a.Make(chess.NewMove(chess.B8, chess.C6, chess.Quiet))

	b := NewPosition()
	b.Make(chess.NewMove(chess.B1, chess.C3, chess.Quiet))
	b.Make(chess.NewMove(chess.B8, chess.C6, chess.Quiet))
	b.Make(chess.NewMove(chess.G1, chess.F3, chess.Quiet))
	b.Make(chess.NewMove(chess.G8, chess.F6, chess.Quiet))

	assert.Equal(t, a.Key(), b.Key())

	// returning the knights restores the start key
	a.Make(chess.NewMove(chess.F3, chess.G1, chess.Quiet))
	a.Make(chess.NewMove(chess.F6, chess.G8, chess.Quiet))
	a.Make(chess.NewMove(chess.C3, chess.B1, chess.Quiet))
	a.Make(chess.NewMove(chess.C6, chess.B8, chess.Quiet))
	assert.Equal(t, NewPosition().Key(), a.Key())
}

func TestIsAttacked(t *testing.T) {
	p, _ := FromFEN(kiwipete)

	assert.True(t, p.IsAttacked(chess.D5, chess.Black))  // e6 pawn
	assert.True(t, p.IsAttacked(chess.E4, chess.Black))  // f6 knight
	assert.True(t, p.IsAttacked(chess.F6, chess.White))  // f3 queen up the f file
	assert.True(t, p.IsAttacked(chess.H3, chess.White))  // g2 pawn
	assert.False(t, p.IsAttacked(chess.E1, chess.Black)) // white king is safe here
	assert.False(t, p.InCheck(chess.White))
	assert.False(t, p.InCheck(chess.Black))

	p2, _ := FromFEN("4k3/8/8/8/8/8/8/4QK2 b - - 0 1")
	assert.True(t, p2.InCheck(chess.Black)) // queen on the open e file
	assert.False(t, p2.InCheck(chess.White))
}

func TestClone(t *testing.T) {
	p := NewPosition()
	q := p.Clone()
	q.Make(chess.NewMove(chess.E2, chess.E4, chess.DoublePawnPush))
	assert.Equal(t, StartFEN, p.FEN())
	assert.NotEqual(t, p.FEN(), q.FEN())
	assert.NotEqual(t, p.Key(), q.Key())
}

func TestPlaceRemove(t *testing.T) {
	p, _ := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	key := p.Key()

	wq := chess.NewPiece(chess.Queen, chess.White)
	p.Place(wq, chess.D4)
	assert.Equal(t, wq, p.PieceAt(chess.D4))
	checkConsistent(t, p)

	// placing onto an occupied square replaces the occupant
	bn := chess.NewPiece(chess.Knight, chess.Black)
	p.Place(bn, chess.D4)
	assert.Equal(t, bn, p.PieceAt(chess.D4))
	checkConsistent(t, p)

	assert.Equal(t, bn, p.Remove(chess.D4))
	assert.Equal(t, chess.NoPiece, p.PieceAt(chess.D4))
	assert.Equal(t, chess.NoPiece, p.Remove(chess.D4)) // no-op
	assert.Equal(t, key, p.Key())
	checkConsistent(t, p)
}
