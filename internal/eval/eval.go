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
	"github.com/mhelmer/chessgo/internal/config"
	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

// homeSquares lists the starting squares of the knights and bishops,
// used by the development penalty.
var homeSquares = [ColorLength]map[Square]PieceType{
	White: {SqB1: Knight, SqG1: Knight, SqC1: Bishop, SqF1: Bishop},
	Black: {SqB8: Knight, SqG8: Knight, SqC8: Bishop, SqF8: Bishop},
}

// seventhRank is the rank index of "the opponent's second rank" for
// each color: 6 (rank 7) for White, 1 (rank 2) for Black.
var seventhRank = [ColorLength]int{White: 6, Black: 1}

// Evaluate returns the static score of pos in centipawns from the
// side-to-move's perspective: positive favors the mover.
func Evaluate(pos *position.Position) Value {
	var material [ColorLength]Value
	var midgame [ColorLength]int32
	var phase int

	for sq := Square(0); sq < SqLength; sq++ {
		p := pos.PieceAt(sq)
		if p == Empty {
			continue
		}
		c := p.Color()
		pt := p.Type()
		material[c] += MaterialValue[pt]
		phase += phaseWeight[pt]

		if pt == King {
			continue // king PSQT is phase-blended below, once phase is known
		}
		midgame[c] += int32(psqtValue(c, pt, sq))
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}

	for c := White; c <= Black; c++ {
		king := pos.KingSquare(c)
		if king != SqNone {
			midgame[c] += int32(kingValue(c, king, phase))
		}
	}

	var devPenalty, passedBonus, rookBonus [ColorLength]int32

	if config.Settings.Eval.UseMaterialEval {
		for sq := Square(0); sq < SqLength; sq++ {
			p := pos.PieceAt(sq)
			if p == Empty {
				continue
			}
			c := p.Color()
			pt := p.Type()

			if home, ok := homeSquares[c][sq]; ok && home == pt {
				devPenalty[c] += int32(config.Settings.Eval.UndevelopedMinorMalus)
			}

			if pt == Pawn && isPassed(pos, sq, c) {
				advance := sq.Rank()
				if c == Black {
					advance = 7 - sq.Rank()
				}
				passedBonus[c] += int32(config.Settings.Eval.PassedPawnBaseBonus) + int32(config.Settings.Eval.PassedPawnAdvanceBonus)*int32(advance)
			}

			if pt == Rook && sq.Rank() == seventhRank[c] {
				rookBonus[c] += int32(config.Settings.Eval.RookOnSeventhBonus)
			}
		}
	}

	var total [ColorLength]int32
	for c := White; c <= Black; c++ {
		total[c] = int32(material[c]) + midgame[c] + passedBonus[c] + rookBonus[c] - devPenalty[c]
	}

	score := Value(total[White] - total[Black])
	if pos.SideToMove() == Black {
		score = -score
	}
	return score
}

// isPassed reports whether the pawn of color c on sq has no enemy
// pawn on its own file or either adjacent file anywhere ahead of it.
func isPassed(pos *position.Position, sq Square, c Color) bool {
	enemy := c.Other()
	forward := 1
	if c == Black {
		forward = -1
	}
	for df := -1; df <= 1; df++ {
		f := sq.File() + df
		if f < 0 || f > 7 {
			continue
		}
		for r := sq.Rank() + forward; r >= 0 && r <= 7; r += forward {
			p := pos.PieceAt(SquareOf(f, r))
			if p.Color() == enemy && p.Type() == Pawn {
				return false
			}
		}
	}
	return true
}
