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
	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

// step returns the square reached by moving one (df,dr) step from sq,
// and false if that step would leave the board.
func step(sq Square, o offset) (Square, bool) {
	f := sq.File() + o.df
	r := sq.Rank() + o.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone, false
	}
	return SquareOf(f, r), true
}

// IsSquareAttacked reports whether a piece of color `by` attacks sq
// given the pieces presently on the board. Used both for in-check
// detection and for castling corridor safety.
func IsSquareAttacked(pos *position.Position, sq Square, by Color) bool {
	// pawns: a pawn of color `by` attacks diagonally toward sq from one
	// rank behind it, on the attacker's own forward direction.
	pawnRankStep := -1
	if by == White {
		pawnRankStep = 1
	}
	for _, df := range [2]int{-1, 1} {
		f := sq.File() + df
		r := sq.Rank() - pawnRankStep
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		from := SquareOf(f, r)
		if p := pos.PieceAt(from); p.Color() == by && p.Type() == Pawn {
			return true
		}
	}

	for _, o := range knightOffsets {
		if from, ok := step(sq, o); ok {
			if p := pos.PieceAt(from); p.Color() == by && p.Type() == Knight {
				return true
			}
		}
	}

	for _, o := range kingOffsets {
		if from, ok := step(sq, o); ok {
			if p := pos.PieceAt(from); p.Color() == by && p.Type() == King {
				return true
			}
		}
	}

	for _, o := range rookDirs {
		if slidingAttacker(pos, sq, o, by, Rook, Queen) {
			return true
		}
	}
	for _, o := range bishopDirs {
		if slidingAttacker(pos, sq, o, by, Bishop, Queen) {
			return true
		}
	}

	return false
}

// slidingAttacker walks from sq along o until it hits a piece or the
// board edge, reporting whether the first piece found is an enemy of
// type want1 or want2.
func slidingAttacker(pos *position.Position, sq Square, o offset, by Color, want1, want2 PieceType) bool {
	cur := sq
	for {
		next, ok := step(cur, o)
		if !ok {
			return false
		}
		p := pos.PieceAt(next)
		if p == Empty {
			cur = next
			continue
		}
		if p.Color() == by && (p.Type() == want1 || p.Type() == want2) {
			return true
		}
		return false
	}
}

// InCheck reports whether color c's king is presently attacked.
func InCheck(pos *position.Position, c Color) bool {
	king := pos.KingSquare(c)
	if king == SqNone {
		return false
	}
	return IsSquareAttacked(pos, king, c.Other())
}
