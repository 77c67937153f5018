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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

func kings(pos *position.Position) {
	pos.SetPieceAt(SqE1, WhiteKing)
	pos.SetPieceAt(SqE8, BlackKing)
}

func TestEvaluateSymmetricStartIsZero(t *testing.T) {
	pos := position.NewEmpty()
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		pos.SetPieceAt(SquareOf(f, 0), MakePiece(White, back[f]))
		pos.SetPieceAt(SquareOf(f, 1), WhitePawn)
		pos.SetPieceAt(SquareOf(f, 6), BlackPawn)
		pos.SetPieceAt(SquareOf(f, 7), MakePiece(Black, back[f]))
	}
	pos.SetSideToMove(White)
	assert.EqualValues(t, 0, Evaluate(pos))
	pos.SetSideToMove(Black)
	assert.EqualValues(t, 0, Evaluate(pos))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	pos := position.NewEmpty()
	kings(pos)
	pos.SetPieceAt(SqD4, WhiteQueen)
	pos.SetSideToMove(White)
	white := Evaluate(pos)
	assert.Greater(t, int(white), 0)

	pos.SetSideToMove(Black)
	black := Evaluate(pos)
	assert.Equal(t, -white, black, "flipping side to move negates the score")
}

func TestPassedPawnBonusIncreasesWithAdvance(t *testing.T) {
	pos1 := position.NewEmpty()
	kings(pos1)
	pos1.SetPieceAt(SqA2, WhitePawn)
	pos1.SetSideToMove(White)
	shallow := Evaluate(pos1)

	pos2 := position.NewEmpty()
	kings(pos2)
	pos2.SetPieceAt(SqA6, WhitePawn)
	pos2.SetSideToMove(White)
	advanced := Evaluate(pos2)

	assert.Greater(t, int(advanced), int(shallow))
}

func TestRookOnSeventhBonus(t *testing.T) {
	pos1 := position.NewEmpty()
	kings(pos1)
	pos1.SetPieceAt(SqA4, WhiteRook)
	pos1.SetSideToMove(White)
	middle := Evaluate(pos1)

	pos2 := position.NewEmpty()
	kings(pos2)
	pos2.SetPieceAt(SqA7, WhiteRook)
	pos2.SetSideToMove(White)
	seventh := Evaluate(pos2)

	assert.Greater(t, int(seventh), int(middle))
}

func TestUndevelopedMinorMalus(t *testing.T) {
	pos1 := position.NewEmpty()
	kings(pos1)
	pos1.SetPieceAt(SqB1, WhiteKnight)
	pos1.SetSideToMove(White)
	home := Evaluate(pos1)

	pos2 := position.NewEmpty()
	kings(pos2)
	pos2.SetPieceAt(SqC3, WhiteKnight)
	pos2.SetSideToMove(White)
	developed := Evaluate(pos2)

	assert.Greater(t, int(developed), int(home))
}
