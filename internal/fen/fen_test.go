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

package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mhelmer/chessgo/internal/types"
)

func TestParseStartPosition(t *testing.T) {
	pos, fullmove, err := Parse(StartFen)
	assert.NoError(t, err)
	assert.Equal(t, 1, fullmove)
	assert.Equal(t, White, pos.SideToMove())
	assert.Equal(t, AllCastling, pos.CastlingRights())
	assert.Equal(t, SqNone, pos.EnPassant())
	assert.Equal(t, WhiteRook, pos.PieceAt(SqA1))
	assert.Equal(t, BlackKing, pos.PieceAt(SqE8))
	assert.True(t, pos.AssertHashConsistent())
}

func TestRoundTripStartPosition(t *testing.T) {
	pos, fullmove, err := Parse(StartFen)
	assert.NoError(t, err)
	assert.Equal(t, StartFen, Of(pos, fullmove))
}

func TestParseEnPassantAndHalfmove(t *testing.T) {
	pos, fullmove, err := Parse("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 17")
	assert.NoError(t, err)
	assert.Equal(t, 17, fullmove)
	assert.Equal(t, SqD6, pos.EnPassant())
	assert.Equal(t, 0, pos.Halfmove())
}

func TestParseRejectsBadRankCount(t *testing.T) {
	_, _, err := Parse("8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsDuplicateCastlingLetter(t *testing.T) {
	_, _, err := Parse("8/8/8/8/8/8/8/8 w KK - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsBadSideLetter(t *testing.T) {
	_, _, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}
