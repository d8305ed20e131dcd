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

// Sliding piece attacks are answered from precomputed tables indexed
// by a perfect hash of the relevant occupancy:
//
//	attacks = table[offset + ((occ & mask) * magic) >> shift]
//
// The multipliers are found by a brute force search at start up,
// seeded with a fixed seed so every run builds identical tables.
// See https://www.chessprogramming.org/Magic_Bitboards

// magicSeed is fixed so table generation is deterministic.
const magicSeed = 0x41da23c1

type magicEntry struct {
	mask   Bitboard
	magic  uint64
	shift  uint
	offset uint32
}

var (
	rookMagic   [64]magicEntry
	bishopMagic [64]magicEntry

	// all per-square tables packed back to back
	rookTable   = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
)

var (
	rookDirs   = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// RookAttacks returns the attack set of a rook on sq with the given
// board occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	m := &rookMagic[sq]
	return rookTable[m.offset+uint32(uint64(occ&m.mask)*m.magic>>m.shift)]
}

// BishopAttacks returns the attack set of a bishop on sq with the
// given board occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	m := &bishopMagic[sq]
	return bishopTable[m.offset+uint32(uint64(occ&m.mask)*m.magic>>m.shift)]
}

// QueenAttacks returns the attack set of a queen on sq with the given
// board occupancy.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// AttacksOf returns the attack set of the given non pawn piece type.
func AttacksOf(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case Rook:
		return RookAttacks(sq, occ)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return KingAttacks(sq)
	}
	return 0
}

// slideAttacks walks the rays from sq and collects every square up to
// and including the first occupied one. Too slow for the search, used
// only to build and verify the tables.
func slideAttacks(sq Square, occ Bitboard, dirs [4][2]int) Bitboard {
	var b Bitboard
	for _, d := range dirs {
		for f, r := sq.File()+d[0], sq.Rank()+d[1]; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+d[0], r+d[1] {
			s := SquareAt(f, r)
			b.Set(s)
			if occ.Has(s) {
				break
			}
		}
	}
	return b
}

// relevantMask is the attack set on an empty board without the last
// square of each ray. Occupancy on those edge squares can never
// change the answer, keeping them out of the hash keeps the tables
// small.
func relevantMask(sq Square, dirs [4][2]int) Bitboard {
	var b Bitboard
	for _, d := range dirs {
		for f, r := sq.File()+d[0], sq.Rank()+d[1]; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+d[0], r+d[1] {
			if nf, nr := f+d[0], r+d[1]; nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				break
			}
			b.Set(SquareAt(f, r))
		}
	}
	return b
}

// findMagics fills the magic entries and the packed attack table for
// one slider. For every square it enumerates all subsets of the
// relevant mask with the Carry-Rippler trick and then draws sparse
// candidate multipliers until one maps every subset to a table slot
// holding the right attack set.
func findMagics(magics *[64]magicEntry, table []Bitboard, dirs [4][2]int, rng *Rand) {
	offset := uint32(0)
	for sq := A1; sq <= H8; sq++ {
		m := &magics[sq]
		m.mask = relevantMask(sq, dirs)
		m.shift = uint(64 - m.mask.Count())
		m.offset = offset
		size := 1 << m.mask.Count()

		// enumerate all subsets of the mask and their attack sets
		occs := make([]Bitboard, 0, size)
		refs := make([]Bitboard, 0, size)
		for sub := Bitboard(0); ; {
			occs = append(occs, sub)
			refs = append(refs, slideAttacks(sq, sub, dirs))
			sub = (sub - m.mask) & m.mask
			if sub == 0 {
				break
			}
		}

		slots := table[offset : offset+uint32(size)]
		stamp := make([]int, size)
		attempt := 0
		for {
			m.magic = rng.NextSparse()
			// candidates whose high byte of magic*mask is nearly
			// empty can never produce a valid mapping
			if (Bitboard(m.magic) * m.mask >> 56).Count() < 6 {
				continue
			}
			attempt++
			ok := true
			for i := range occs {
				idx := uint64(occs[i]) * m.magic >> m.shift
				if stamp[idx] != attempt {
					stamp[idx] = attempt
					slots[idx] = refs[i]
				} else if slots[idx] != refs[i] {
					ok = false
					break
				}
			}
			if ok {
				break
			}
		}
		offset += uint32(size)
	}
}

func init() {
	rng := NewRand(magicSeed)
	findMagics(&rookMagic, rookTable, rookDirs, rng)
	findMagics(&bishopMagic, bishopTable, bishopDirs, rng)
}
