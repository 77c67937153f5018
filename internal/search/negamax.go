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

import (
	"time"

	"github.com/mhelmer/chessgo/internal/config"
	"github.com/mhelmer/chessgo/internal/eval"
	"github.com/mhelmer/chessgo/internal/movegen"
	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

// negamax implements the recursive search node: deadline polling, the
// draw short-circuit, check extension, TT probe/store, and the main
// move loop. It always returns a score from the side-to-move's
// perspective at entry.
func (s *Searcher) negamax(pos *position.Position, depth, ply int, alpha, beta Value) Value {
	if time.Now().After(s.deadline) {
		return TimeoutSentinel
	}
	s.Nodes++

	if s.draw.isDraw(pos.Halfmove(), ply) {
		return s.contemptScore(pos)
	}

	mover := pos.SideToMove()
	inCheck := movegen.InCheck(pos, mover)
	if inCheck && depth > 0 && config.Settings.Search.UseCheckExt {
		depth++
	}
	if depth <= 0 && !inCheck {
		return s.quiescence(pos, ply, alpha, beta)
	}

	origAlpha := alpha
	var ttHint Move
	useTT := s.tt != nil && config.Settings.Search.UseTT
	if useTT {
		if score, hint, ok := s.tt.Probe(pos.Hash(), depth, alpha, beta, ply); ok {
			return score
		} else if hint != MoveNone {
			ttHint = hint
		}
	}

	moves := movegen.GenerateLegal(pos)
	if len(moves) == 0 {
		if inCheck {
			return -Mate + Value(ply)
		}
		return Draw
	}
	orderMoves(pos, moves, ttHint)

	best := -Mate - 1
	bestMove := MoveNone
	bound := BoundUpper

	for _, m := range moves {
		undo := movegen.Apply(pos, m)
		pos.SetSideToMove(mover.Other())
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		movegen.Undo(pos, undo)

		if score == TimeoutSentinel || score == -TimeoutSentinel {
			return TimeoutSentinel
		}

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			bound = BoundLower
			break
		}
	}

	if useTT {
		if bound != BoundLower {
			if alpha > origAlpha && best < beta {
				bound = BoundExact
			} else {
				bound = BoundUpper
			}
		}
		s.tt.Store(pos.Hash(), depth, best, bound, bestMove, ply)
	}

	return best
}

// quiescence extends the search along tactical moves only (captures,
// en passant, promotions) past the nominal horizon, to avoid misjudging
// positions mid-exchange.
func (s *Searcher) quiescence(pos *position.Position, ply int, alpha, beta Value) Value {
	if time.Now().After(s.deadline) {
		return TimeoutSentinel
	}
	s.Nodes++
	s.QNodes++

	if !config.Settings.Search.UseQuiescence {
		return s.evaluate(pos)
	}

	standPat := s.evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	useTT := s.tt != nil && config.Settings.Search.UseTT
	var ttHint Move
	if useTT {
		if score, hint, ok := s.tt.Probe(pos.Hash(), 0, alpha, beta, ply); ok {
			return score
		} else if hint != MoveNone {
			ttHint = hint
		}
	}

	mover := pos.SideToMove()
	legal := movegen.GenerateLegal(pos)
	moves := make([]Move, 0, len(legal))
	for _, m := range legal {
		if isTactical(pos, m) {
			moves = append(moves, m)
		}
	}
	orderMoves(pos, moves, ttHint)

	origAlpha := alpha
	best := standPat
	bestMove := MoveNone
	bound := BoundUpper

	for _, m := range moves {
		undo := movegen.Apply(pos, m)
		pos.SetSideToMove(mover.Other())
		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		movegen.Undo(pos, undo)

		if score == TimeoutSentinel || score == -TimeoutSentinel {
			return TimeoutSentinel
		}

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			bound = BoundLower
			break
		}
	}

	if useTT {
		if bound != BoundLower {
			if alpha > origAlpha {
				bound = BoundExact
			} else {
				bound = BoundUpper
			}
		}
		s.tt.Store(pos.Hash(), 0, best, bound, bestMove, ply)
	}

	return best
}

// evaluate wraps the static evaluator; kept as a method so search can
// later add search-local evaluation caching without touching callers.
func (s *Searcher) evaluate(pos *position.Position) Value {
	return eval.Evaluate(pos)
}

// contemptScore is the draw value, nudged below zero when the side to
// move holds a material edge - it would rather keep playing than bank
// a draw it is currently winning material in.
func (s *Searcher) contemptScore(pos *position.Position) Value {
	var material [ColorLength]Value
	for sq := Square(0); sq < SqLength; sq++ {
		if p := pos.PieceAt(sq); p != Empty {
			material[p.Color()] += eval.MaterialValue[p.Type()]
		}
	}
	mover := pos.SideToMove()
	if material[mover] > material[mover.Other()] {
		return Value(config.Settings.Search.Contempt)
	}
	return Draw
}
