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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft is a move generation correctness/performance tester: it counts
// the legal move sequences of exactly a given depth from a position.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
}

// NewPerft returns a fresh, zeroed Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Perft returns the count of legal move sequences of exactly depth
// plies from pos. Perft(pos, 0) == 1 for every position.
func Perft(pos *position.Position, depth int) uint64 {
	return NewPerft().Run(pos, depth)
}

// Run counts nodes at depth and also accumulates the detail counters
// (captures, en passant, castles, promotions, checks) seen along the
// way, for the richer EPD-style regression harness.
func (pf *Perft) Run(pos *position.Position, depth int) uint64 {
	n := pf.perft(pos, depth)
	pf.Nodes = n
	return n
}

func (pf *Perft) perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	mover := pos.SideToMove()
	moves := GenerateLegal(pos)
	if depth == 1 {
		for _, m := range moves {
			pf.tally(pos, m)
		}
		return uint64(len(moves))
	}
	var count uint64
	for _, m := range moves {
		undo := Apply(pos, m)
		pos.SetSideToMove(mover.Other())
		count += pf.perft(pos, depth-1)
		Undo(pos, undo)
	}
	return count
}

func (pf *Perft) tally(pos *position.Position, m Move) {
	from, to := m.From(), m.To()
	moved := pos.PieceAt(from)
	captured := pos.PieceAt(to)
	if captured != Empty {
		pf.CaptureCounter++
	}
	if moved.Type() == Pawn && to == pos.EnPassant() && from.File() != to.File() && captured == Empty {
		pf.CaptureCounter++
		pf.EnpassantCounter++
	}
	if moved.Type() == King {
		df := to.File() - from.File()
		if df == 2 || df == -2 {
			pf.CastleCounter++
		}
	}
	if _, ok := m.Promotion(); ok {
		pf.PromotionCounter++
	}
	mover := pos.SideToMove()
	undo := Apply(pos, m)
	pos.SetSideToMove(mover.Other())
	if InCheck(pos, mover.Other()) {
		pf.CheckCounter++
	}
	Undo(pos, undo)
}

// RunTimed is a small benchmarking helper: it runs Perft and reports
// nodes/sec through the shared message printer, matching the teacher's
// own perft reporting idiom.
func RunTimed(pos *position.Position, depth int) (uint64, string) {
	start := time.Now()
	n := Perft(pos, depth)
	elapsed := time.Since(start)
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(n) / elapsed.Seconds())
	}
	return n, out.Sprintf("perft(%d) = %d nodes in %s (%d nps)", depth, n, elapsed, nps)
}
