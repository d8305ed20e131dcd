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

// Package ttable is the transposition table: a direct mapped array of
// search results keyed by the zobrist hash. Storing replaces the slot
// unconditionally, collisions are not resolved, and a matching hash
// is treated as identity.
package ttable

import (
	"github.com/4iy4/athena/internal/chess"
)

// Bound classifies a stored score: PV entries are exact, Cut entries
// are lower bounds from a beta cutoff, All entries are upper bounds.
type Bound uint8

// The three entry classes.
const (
	PV Bound = iota
	Cut
	All
)

// Entry is one stored search result.
type Entry struct {
	Key   uint64
	Move  chess.Move
	Score int16
	Depth int8
	Bound Bound
}

// entrySize is the memory per entry including padding.
const entrySize = 16

// DefaultEntries is the default table capacity.
const DefaultEntries = 1 << 21

// Table is the transposition table. Create one with New. A table of
// capacity zero stores nothing and never hits.
type Table struct {
	slots []Entry
	mask  uint64
	used  int
}

// New creates a table with the given number of entries rounded down
// to a power of two.
func New(entries int) *Table {
	n := 0
	if entries > 0 {
		n = 1
		for n*2 <= entries { // largest power of two <= entries
			n *= 2
		}
	}
	t := &Table{}
	if n > 0 {
		t.slots = make([]Entry, n)
		t.mask = uint64(n - 1)
	}
	return t
}

// EntriesForMB returns the number of entries fitting into the given
// memory budget in megabytes.
func EntriesForMB(mb int) int {
	return mb * 1024 * 1024 / entrySize
}

// Cap returns the capacity of the table in entries.
func (t *Table) Cap() int {
	return len(t.slots)
}

// Used returns the number of occupied slots.
func (t *Table) Used() int {
	return t.used
}

// Probe looks the key up and returns the entry when the stored hash
// matches exactly.
func (t *Table) Probe(key uint64) (Entry, bool) {
	if t.slots == nil || key == 0 {
		return Entry{}, false
	}
	e := t.slots[key&t.mask]
	if e.Key != key {
		return Entry{}, false
	}
	return e, true
}

// Store writes the entry for the key, replacing whatever occupied the
// slot before.
func (t *Table) Store(key uint64, m chess.Move, score, depth int, b Bound) {
	if t.slots == nil {
		return
	}
	slot := &t.slots[key&t.mask]
	if slot.Key == 0 {
		t.used++
	}
	*slot = Entry{Key: key, Move: m, Score: int16(score), Depth: int8(depth), Bound: b}
}

// Clear drops all entries.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
	t.used = 0
}
