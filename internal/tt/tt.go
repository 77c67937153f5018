/*
 * chessgo - a small chess engine, built for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 chessgo contributors
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

// Package tt implements a fixed-size, direct-mapped transposition
// table keyed by a position's Zobrist hash. It is not thread safe -
// the search that owns it is single-threaded, and Resize/Clear must
// not be called concurrently with a probe or store.
package tt

import (
	"math"
	"math/bits"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/mhelmer/chessgo/internal/types"
)

var out = message.NewPrinter(language.English)

// MaxSizeMB caps how large a single table resize request is honored.
const MaxSizeMB = 4096

// entry is one slot. depth -1 marks an empty slot (never a match).
type entry struct {
	key   uint64
	depth int
	score Value
	bound Bound
	best  Move
}

const emptyDepth = -1

// Table is the transposition table. Create with New(sizeMB).
type Table struct {
	data []entry
	mask uint64

	Stats Stats
}

// Stats tracks usage counters for diagnostics, mirroring the teacher's
// own TtStats idiom.
type Stats struct {
	Stores   uint64
	Hits     uint64
	Misses   uint64
	Collisions uint64
}

// New returns a Table sized to the largest power-of-two entry count
// that fits within sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize clears and resizes the table. Not safe to call while a search
// using this table is running.
func (t *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		sizeMB = MaxSizeMB
	}
	if sizeMB < 1 {
		sizeMB = 1
	}
	var entrySize uint64 = 40 // approx size of entry{} in bytes
	sizeBytes := uint64(sizeMB) * 1024 * 1024
	count := uint64(1) << uint64(math.Floor(math.Log2(float64(sizeBytes/entrySize))))
	if count == 0 {
		count = 1
	}
	t.data = make([]entry, count)
	t.mask = count - 1
	t.Stats = Stats{}
	for i := range t.data {
		t.data[i].depth = emptyDepth
	}
}

func (t *Table) index(key uint64) uint64 {
	return key & t.mask
}

// mateIn/mateOut adjust a mate score towards or away from infinity by
// ply, so that mate-in-N values stay consistent across different root
// distances when shared through the table.
func mateIn(score Value, ply int) Value {
	if score > MateThreshold {
		return score + Value(ply)
	}
	if score < -MateThreshold {
		return score - Value(ply)
	}
	return score
}

func mateOut(score Value, ply int) Value {
	if score > MateThreshold {
		return score - Value(ply)
	}
	if score < -MateThreshold {
		return score + Value(ply)
	}
	return score
}

// Probe returns the stored score and best move for key if the slot
// holds key, its depth is at least `depth`, and its bound is
// compatible with the window (alpha, beta): EXACT is always usable,
// LOWER only if it is >= beta, UPPER only if it is <= alpha.
func (t *Table) Probe(key uint64, depth int, alpha, beta Value, ply int) (Value, Move, bool) {
	e := &t.data[t.index(key)]
	if e.depth == emptyDepth || e.key != key {
		t.Stats.Misses++
		return 0, MoveNone, false
	}
	t.Stats.Hits++
	if e.depth < depth {
		return 0, e.best, false
	}
	score := mateOut(e.score, ply)
	switch e.bound {
	case BoundExact:
		return score, e.best, true
	case BoundLower:
		if score >= beta {
			return score, e.best, true
		}
	case BoundUpper:
		if score <= alpha {
			return score, e.best, true
		}
	}
	return 0, e.best, false
}

// PeekBestMove returns a best-move hint for key for ordering purposes,
// independent of whether Probe's score would be usable.
func (t *Table) PeekBestMove(key uint64) (Move, bool) {
	e := &t.data[t.index(key)]
	if e.depth == emptyDepth || e.key != key || e.best == MoveNone {
		return MoveNone, false
	}
	return e.best, true
}

// Store writes key's entry, replacing the existing one only if it is
// not already a deeper match for the same key (depth-preferred
// replacement) or holds a different key entirely.
func (t *Table) Store(key uint64, depth int, score Value, bound Bound, best Move, ply int) {
	e := &t.data[t.index(key)]
	if e.depth != emptyDepth && e.key == key && e.depth > depth {
		return
	}
	if e.depth != emptyDepth && e.key != key {
		t.Stats.Collisions++
	}
	if e.key != key {
		e.best = MoveNone
	}
	t.Stats.Stores++
	e.key = key
	e.depth = depth
	e.score = mateIn(score, ply)
	e.bound = bound
	if best != MoveNone {
		e.best = best.Base()
	}
}

// Clear resets every slot to empty.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = entry{depth: emptyDepth}
	}
	t.Stats = Stats{}
}

// Size returns the number of entries and the table's approximate
// memory footprint in bytes.
func (t *Table) Size() (entries int, bytes uint64) {
	return len(t.data), uint64(len(t.data)) * 40
}

func (t *Table) String() string {
	entries, b := t.Size()
	return out.Sprintf("TT: %d entries (%d bits), %d MB, stores=%d hits=%d misses=%d collisions=%d",
		entries, bits.Len64(t.mask), b/(1024*1024), t.Stats.Stores, t.Stats.Hits, t.Stats.Misses, t.Stats.Collisions)
}
