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
	"fmt"
	"strconv"
	"strings"

	"github.com/4iy4/athena/internal/chess"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition returns the starting position.
func NewPosition() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// FromFEN builds a position from a FEN string. Any FEN that parses is
// accepted, piece counts are not validated beyond the grammar.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen %q: needs at least 4 fields", fen)
	}

	p := &Position{
		fullmove: 1,
		states:   make([]state, 1, 64),
	}
	for sq := range p.squares {
		p.squares[sq] = chess.NoPiece
	}

	// piece placement, rank 8 down to rank 1
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen %q: placement needs 8 ranks", fen)
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pc := chess.PieceFromLetter(c)
			if pc == chess.NoPiece || file > 7 {
				return nil, fmt.Errorf("fen %q: bad placement %q", fen, row)
			}
			p.Place(pc, chess.SquareAt(file, rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("fen %q: rank %q does not fill 8 files", fen, row)
		}
	}

	// side to move
	switch fields[1] {
	case "w":
		p.sideToMove = chess.White
	case "b":
		p.sideToMove = chess.Black
	default:
		return nil, fmt.Errorf("fen %q: bad side to move %q", fen, fields[1])
	}

	// castling rights
	st := p.top()
	st.captured = chess.NoPiece
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				st.castling |= chess.WhiteKingSide
			case 'Q':
				st.castling |= chess.WhiteQueenSide
			case 'k':
				st.castling |= chess.BlackKingSide
			case 'q':
				st.castling |= chess.BlackQueenSide
			default:
				return nil, fmt.Errorf("fen %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	// en passant target
	if fields[3] != "-" {
		sq := chess.SquareFromString(fields[3])
		if sq == chess.NoSquare {
			return nil, fmt.Errorf("fen %q: bad en passant field %q", fen, fields[3])
		}
		st.ep = epPresent | uint8(sq.File())
	}

	// halfmove clock and fullmove counter are optional
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen %q: bad halfmove clock %q", fen, fields[4])
		}
		if n > 255 {
			n = 255
		}
		st.halfmove = uint8(n)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("fen %q: bad fullmove counter %q", fen, fields[5])
		}
		p.fullmove = n
	}

	// piece keys were folded in by Place, add the rest
	p.key ^= castlingKey[st.castling]
	if st.ep&epPresent != 0 {
		p.key ^= epFileKey[st.ep&7]
	}
	if p.sideToMove == chess.Black {
		p.key ^= sideKey
	}
	return p, nil
}

// FEN returns the position as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file <= 7; file++ {
			pc := p.squares[chess.SquareAt(file, rank)]
			if pc == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.sideToMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.top().castling.String())
	sb.WriteByte(' ')
	if ep, ok := p.EnPassant(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmove))
	return sb.String()
}

// String draws the board with the FEN below it.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file <= 7; file++ {
			pc := p.squares[chess.SquareAt(file, rank)]
			if pc == chess.NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(pc.Letter())
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(p.FEN())
	return sb.String()
}
