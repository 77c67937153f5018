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

// Package search implements iterative-deepening negamax with
// alpha-beta pruning, quiescence, move ordering, check extension, mate-
// distance-normalized transposition table use and a contempt-adjusted
// draw score. It is single-threaded and never blocks: a search is
// cancelled purely by wall-clock deadline polling inside negamax and
// quiescence.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mhelmer/chessgo/internal/config"
	myLogging "github.com/mhelmer/chessgo/internal/logging"
	"github.com/mhelmer/chessgo/internal/movegen"
	"github.com/mhelmer/chessgo/internal/position"
	"github.com/mhelmer/chessgo/internal/tt"
	. "github.com/mhelmer/chessgo/internal/types"
)

var out = message.NewPrinter(language.English)
var log *logging.Logger

func init() {
	log = myLogging.GetLog("search")
}

// Result is what a search run reports back to its caller.
type Result struct {
	BestMove    Move
	Score       Value
	DepthReached int
	Nodes       uint64
	QNodes      uint64
}

// Searcher owns the transposition table and per-run counters. Reuse
// one instance across moves of the same game so the table keeps its
// entries; call NewGame to start a fresh table.
type Searcher struct {
	tt   *tt.Table
	draw DrawContext

	deadline time.Time
	Nodes    uint64
	QNodes   uint64
}

// NewSearcher returns a Searcher with its own transposition table
// sized per config.Settings.Search.TTSizeMB (ignored, and no table
// kept, if UseTT is false).
func NewSearcher() *Searcher {
	s := &Searcher{}
	if config.Settings.Search.UseTT {
		s.tt = tt.New(config.Settings.Search.TTSizeMB)
	}
	return s
}

// NewGame clears the transposition table between games.
func (s *Searcher) NewGame() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

// SearchFixedDepth runs a single fixed-depth search with no deadline,
// matching the core's "fixed-depth (depth, board -> move, score)"
// entry point.
func (s *Searcher) SearchFixedDepth(pos *position.Position, depth int) (Move, Value) {
	res := s.SearchTimed(pos, depth, time.Now().Add(24*time.Hour), DrawContext{})
	return res.BestMove, res.Score
}

// SearchTimed runs iterative deepening from depth 1 up to maxDepth,
// stopping early once deadline passes. The result of the last fully
// completed depth is always returned; if even depth 1 did not finish,
// the best move found so far during that partial pass is still
// surfaced as long as at least one move was examined.
func (s *Searcher) SearchTimed(pos *position.Position, maxDepth int, deadline time.Time, draw DrawContext) Result {
	s.deadline = deadline
	s.draw = draw
	s.Nodes = 0
	s.QNodes = 0

	moves := movegen.GenerateLegal(pos)
	if len(moves) == 0 {
		return Result{BestMove: MoveNone, Score: 0}
	}

	result := Result{BestMove: moves[0]}
	mover := pos.SideToMove()

	for depth := 1; depth <= maxDepth; depth++ {
		if time.Now().After(s.deadline) {
			break
		}

		var ttHint Move
		if s.tt != nil {
			ttHint, _ = s.tt.PeekBestMove(pos.Hash())
		}
		orderMoves(pos, moves, ttHint)

		alpha, beta := -Mate-1, Mate+1
		best := -Mate - 1
		bestMove := MoveNone
		timedOut := false

		for _, m := range moves {
			undo := movegen.Apply(pos, m)
			pos.SetSideToMove(mover.Other())
			score := -s.negamax(pos, depth-1, 1, -beta, -alpha)
			movegen.Undo(pos, undo)

			if score == TimeoutSentinel || score == -TimeoutSentinel {
				timedOut = true
				break
			}
			if score > best {
				best = score
				bestMove = m
			}
			if best > alpha {
				alpha = best
			}
		}

		if timedOut {
			// depth 1 is special-cased: a best move from a partially
			// completed depth-1 iteration is still surfaced, since there
			// is no earlier completed depth to fall back to. At any
			// later depth the previous depth's result is retained as-is.
			if depth == 1 && bestMove != MoveNone {
				result = Result{BestMove: bestMove, Score: best, DepthReached: depth, Nodes: s.Nodes, QNodes: s.QNodes}
				log.Debugf("depth %d (partial): %s", depth, out.Sprintf("move=%s score=%d nodes=%d qnodes=%d", bestMove.UCI(), best, s.Nodes, s.QNodes))
			}
			break
		}

		result = Result{BestMove: bestMove, Score: best, DepthReached: depth, Nodes: s.Nodes, QNodes: s.QNodes}
		log.Debugf("depth %d: %s", depth, out.Sprintf("move=%s score=%d nodes=%d qnodes=%d", bestMove.UCI(), best, s.Nodes, s.QNodes))

		if s.tt != nil {
			s.tt.Store(pos.Hash(), depth, best, BoundExact, bestMove, 0)
		}

		if best.IsMateScore() {
			break
		}
	}

	return result
}
