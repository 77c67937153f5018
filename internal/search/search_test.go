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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

func mustPos(t *testing.T, setup func(p *position.Position)) *position.Position {
	p := position.NewEmpty()
	setup(p)
	return p
}

// Back-rank mate in one: white rook delivers mate on the back rank.
func TestSearchFindsMateInOne(t *testing.T) {
	pos := mustPos(t, func(p *position.Position) {
		p.SetPieceAt(SqH8, BlackKing)
		p.SetPieceAt(SqG7, BlackPawn)
		p.SetPieceAt(SqH7, BlackPawn)
		p.SetPieceAt(SqA1, WhiteRook)
		p.SetPieceAt(SqH1, WhiteKing)
		p.SetSideToMove(White)
	})

	s := NewSearcher()
	move, score := s.SearchFixedDepth(pos, 3)
	assert.Equal(t, "a1a8", move.UCI())
	assert.True(t, score.IsMateScore())
	assert.Greater(t, int(score), 0)
}

func TestSearchReturnsLegalMoveUnderTightDeadline(t *testing.T) {
	pos := mustPos(t, func(p *position.Position) {
		p.SetPieceAt(SqE1, WhiteKing)
		p.SetPieceAt(SqE8, BlackKing)
		p.SetPieceAt(SqD1, WhiteQueen)
		p.SetSideToMove(White)
	})

	s := NewSearcher()
	result := s.SearchTimed(pos, 64, time.Now().Add(time.Nanosecond), DrawContext{})
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestSearchPrefersMaterialGainingCapture(t *testing.T) {
	pos := mustPos(t, func(p *position.Position) {
		p.SetPieceAt(SqE1, WhiteKing)
		p.SetPieceAt(SqE8, BlackKing)
		p.SetPieceAt(SqD4, WhiteRook)
		p.SetPieceAt(SqD8, BlackQueen)
		p.SetPieceAt(SqA2, BlackRook)
		p.SetSideToMove(White)
	})

	s := NewSearcher()
	move, _ := s.SearchFixedDepth(pos, 2)
	assert.Equal(t, "d4d8", move.UCI())
}

func TestDrawContextThreefoldIsDraw(t *testing.T) {
	d := DrawContext{RepetitionCount: 3}
	assert.True(t, d.isDraw(10, 0))
}

func TestDrawContextFiftyMoveRuleIsDraw(t *testing.T) {
	d := DrawContext{}
	assert.True(t, d.isDraw(100, 0))
	assert.False(t, d.isDraw(99, 0))
}
