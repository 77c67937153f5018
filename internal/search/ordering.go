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
	"sort"

	"github.com/mhelmer/chessgo/internal/eval"
	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

const (
	ttHintScore    = 30_000 // fits Move's signed 16-bit order key
	promotionBase  = 3000
	captureBase    = 2000
)

// orderMoves stably sorts moves descending by a score that prefers,
// in order: the TT best-move hint, promotions (by promoted piece
// value), captures (MVV/LVA), then everything else.
func orderMoves(pos *position.Position, moves []Move, ttHint Move) {
	hint := ttHint.Base()
	for i, m := range moves {
		moves[i] = m.WithOrderKey(moveOrderScore(pos, m, hint))
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].OrderKey() > moves[j].OrderKey()
	})
}

func moveOrderScore(pos *position.Position, m Move, ttHint Move) int32 {
	if hint := ttHint; hint != MoveNone && m.Base() == hint {
		return ttHintScore
	}
	if promo, ok := m.Promotion(); ok {
		return int32(promotionBase + eval.MaterialValue[promo])
	}
	captured := pos.PieceAt(m.To())
	if captured != Empty {
		attacker := pos.PieceAt(m.From())
		return int32(captureBase) + 10*int32(eval.MaterialValue[captured.Type()]) - int32(eval.MaterialValue[attacker.Type()])
	}
	// en passant: the captured pawn does not sit on m.To(), but it is
	// still a capture for ordering purposes.
	if moved := pos.PieceAt(m.From()); moved.Type() == Pawn && m.To() == pos.EnPassant() && m.From().File() != m.To().File() {
		return int32(captureBase) + 10*int32(eval.MaterialValue[Pawn]) - int32(eval.MaterialValue[Pawn])
	}
	return 0
}

// isTactical reports whether m is a capture (including en passant) or
// a promotion - the move classes quiescence searches.
func isTactical(pos *position.Position, m Move) bool {
	if _, ok := m.Promotion(); ok {
		return true
	}
	if pos.PieceAt(m.To()) != Empty {
		return true
	}
	moved := pos.PieceAt(m.From())
	return moved.Type() == Pawn && m.To() == pos.EnPassant() && m.From().File() != m.To().File()
}
