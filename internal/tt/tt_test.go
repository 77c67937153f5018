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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mhelmer/chessgo/internal/types"
)

func TestResizeIsPowerOfTwo(t *testing.T) {
	table := New(1)
	entries, _ := table.Size()
	assert.Equal(t, entries&(entries-1), 0)
}

func TestStoreProbeExact(t *testing.T) {
	table := New(1)
	key := uint64(0xDEADBEEF)
	m := NewMove(SqE2, SqE4)
	table.Store(key, 4, Value(55), BoundExact, m, 0)

	score, best, ok := table.Probe(key, 3, -1000, 1000, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(55), score)
	assert.Equal(t, m.Base(), best.Base())
}

func TestProbeMissOnShallowerStoredDepth(t *testing.T) {
	table := New(1)
	key := uint64(12345)
	table.Store(key, 2, Value(10), BoundExact, MoveNone, 0)
	_, _, ok := table.Probe(key, 5, -1000, 1000, 0)
	assert.False(t, ok)
}

func TestProbeBoundWindowing(t *testing.T) {
	table := New(1)
	key := uint64(777)
	table.Store(key, 4, Value(50), BoundLower, MoveNone, 0)

	_, _, ok := table.Probe(key, 4, -1000, 40, 0)
	assert.True(t, ok, "lower bound above beta should cut off")

	_, _, ok = table.Probe(key, 4, -1000, 60, 0)
	assert.False(t, ok, "lower bound not >= beta should not be usable")

	score, _, ok := table.Probe(key, 4, -1000, 50, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(50), score)
}

func TestDepthPreferredReplacement(t *testing.T) {
	table := New(1)
	key := uint64(99)
	table.Store(key, 8, Value(100), BoundExact, MoveNone, 0)
	table.Store(key, 2, Value(1), BoundExact, MoveNone, 0)

	score, _, ok := table.Probe(key, 8, -1000, 1000, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(100), score, "shallower store must not overwrite a deeper entry")
}

func TestMateDistanceNormalization(t *testing.T) {
	table := New(1)
	key := uint64(55555)
	// A mate-in-2 found three plies down from the root is stored
	// root-relative; probing it back at a shallower ply must yield a
	// score closer to Mate by the ply difference.
	table.Store(key, 4, Mate-2, BoundExact, MoveNone, 3)

	score, _, ok := table.Probe(key, 4, -Mate, Mate, 1)
	assert.True(t, ok)
	assert.Equal(t, Mate-2+3-1, score)
}

func TestClearEmptiesTable(t *testing.T) {
	table := New(1)
	key := uint64(1)
	table.Store(key, 4, Value(5), BoundExact, MoveNone, 0)
	table.Clear()
	_, _, ok := table.Probe(key, 1, -1000, 1000, 0)
	assert.False(t, ok)
}

func TestPeekBestMoveIgnoresDepth(t *testing.T) {
	table := New(1)
	key := uint64(42)
	m := NewMove(SqD2, SqD4)
	table.Store(key, 1, Value(0), BoundUpper, m, 0)

	hint, ok := table.PeekBestMove(key)
	assert.True(t, ok)
	assert.Equal(t, m.Base(), hint.Base())
}
