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

package types

// Value is a search/evaluation score in centipawns from the side to
// move's perspective.
type Value int32

const (
	// Mate is the score awarded for delivering mate at ply 0. A mate
	// found at ply k is scored Mate-k so that shorter mates sort higher.
	Mate Value = 100_000
	// MateThreshold: any |score| above this is a mate score, not a
	// material/positional one.
	MateThreshold Value = 99_000
	// TimeoutSentinel is returned by a search node cut short by the
	// deadline. It is chosen larger than Mate so it (and its negation,
	// at any recursion depth) never collides with a real score.
	TimeoutSentinel Value = 200_000
	// Draw is the neutral draw score; contempt adjusts it downward when
	// the side to move is materially ahead.
	Draw Value = 0
)

// IsMateScore reports whether v represents a forced mate rather than a
// material/positional evaluation.
func (v Value) IsMateScore() bool {
	if v < 0 {
		v = -v
	}
	return v > MateThreshold
}

// Bound is the kind of score stored in a transposition table entry.
type Bound int8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "EXACT"
	case BoundLower:
		return "LOWER"
	case BoundUpper:
		return "UPPER"
	default:
		return "NONE"
	}
}
