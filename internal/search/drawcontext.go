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

package search

// DrawContext is set by the caller before each top-level search and
// read (never written) during the search itself. MaxPlies is the
// optional ply cap; zero means "no cap".
type DrawContext struct {
	CurrentPly      int
	MaxPlies        int
	RepetitionCount int
}

// plyCapped reports whether ply (relative to CurrentPly) has reached
// an enforced cap.
func (d DrawContext) plyCapped(ply int) bool {
	if d.MaxPlies <= 0 {
		return false
	}
	return d.CurrentPly+ply >= d.MaxPlies
}

// isDraw reports whether the position at recursion depth ply should be
// scored as an immediate draw: the 50-move rule, a threefold
// repetition already observed by the caller, or an optional ply cap.
func (d DrawContext) isDraw(halfmove int, ply int) bool {
	return halfmove >= 100 || d.RepetitionCount >= 3 || d.plyCapped(ply)
}
