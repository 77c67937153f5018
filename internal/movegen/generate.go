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

// Package movegen produces pseudo-legal and legal moves for a
// position, answers attack/in-check queries, applies and undoes moves
// against a Position, and provides a perft counter used as the
// correctness oracle for everything above it.
package movegen

import (
	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// GeneratePseudoLegal produces every geometrically legal move for the
// side to move, without checking whether it leaves that side's own
// king in check.
func GeneratePseudoLegal(pos *position.Position) []Move {
	moves := make([]Move, 0, 48)
	mover := pos.SideToMove()
	for sq := Square(0); sq < SqLength; sq++ {
		p := pos.PieceAt(sq)
		if p == Empty || p.Color() != mover {
			continue
		}
		switch p.Type() {
		case Pawn:
			genPawn(pos, sq, mover, &moves)
		case Knight:
			genLeaper(pos, sq, mover, knightOffsets[:], &moves)
		case Bishop:
			genSlider(pos, sq, mover, bishopDirs[:], &moves)
		case Rook:
			genSlider(pos, sq, mover, rookDirs[:], &moves)
		case Queen:
			genSlider(pos, sq, mover, queenDirs[:], &moves)
		case King:
			genLeaper(pos, sq, mover, kingOffsets[:], &moves)
			genCastling(pos, mover, &moves)
		}
	}
	return moves
}

func genLeaper(pos *position.Position, from Square, mover Color, offsets []offset, moves *[]Move) {
	for _, o := range offsets {
		to, ok := step(from, o)
		if !ok {
			continue
		}
		target := pos.PieceAt(to)
		if target == Empty || target.Color() != mover {
			*moves = append(*moves, NewMove(from, to))
		}
	}
}

func genSlider(pos *position.Position, from Square, mover Color, dirs []offset, moves *[]Move) {
	for _, o := range dirs {
		cur := from
		for {
			to, ok := step(cur, o)
			if !ok {
				break
			}
			target := pos.PieceAt(to)
			if target == Empty {
				*moves = append(*moves, NewMove(from, to))
				cur = to
				continue
			}
			if target.Color() != mover {
				*moves = append(*moves, NewMove(from, to))
			}
			break
		}
	}
}

func genPawn(pos *position.Position, from Square, mover Color, moves *[]Move) {
	forward := 1
	startRank := 1
	promoRank := 7
	enemy := mover.Other()
	if mover == Black {
		forward = -1
		startRank = 6
		promoRank = 0
	}

	addPawnMove := func(to Square, isCapture bool) {
		if to.Rank() == promoRank {
			for _, pt := range promotionTypes {
				*moves = append(*moves, NewPromotion(from, to, pt))
			}
			return
		}
		*moves = append(*moves, NewMove(from, to))
		_ = isCapture
	}

	// single push
	oneUp := SquareOf(from.File(), from.Rank()+forward)
	if oneUp.Valid() && pos.PieceAt(oneUp) == Empty {
		addPawnMove(oneUp, false)
		// double push
		if from.Rank() == startRank {
			twoUp := SquareOf(from.File(), from.Rank()+2*forward)
			if pos.PieceAt(twoUp) == Empty {
				*moves = append(*moves, NewMove(from, twoUp))
			}
		}
	}

	// captures, including en passant
	for _, df := range [2]int{-1, 1} {
		f := from.File() + df
		if f < 0 || f > 7 {
			continue
		}
		r := from.Rank() + forward
		if r < 0 || r > 7 {
			continue
		}
		to := SquareOf(f, r)
		target := pos.PieceAt(to)
		if target != Empty && target.Color() == enemy {
			addPawnMove(to, true)
			continue
		}
		if to == pos.EnPassant() {
			// the captured pawn sits one file away on the mover's own
			// rank, which the caller (Apply) re-derives; here we only
			// need the EP target square to match.
			*moves = append(*moves, NewMove(from, to))
		}
	}
}

// genCastling generates e1g1/e1c1/e8g8/e8c8 style moves (destination
// square only - the rook move is implicit and handled by Apply).
func genCastling(pos *position.Position, mover Color, moves *[]Move) {
	king := homeKingSquare(mover)
	if pos.KingSquare(mover) != king {
		return
	}
	rights := pos.CastlingRights()

	if rights.Has(KingsideFor(mover)) {
		cs := kingsideSquares[mover]
		if pos.PieceAt(cs.kingTo) == Empty && pos.PieceAt(SquareOf(5, king.Rank())) == Empty {
			if !IsSquareAttacked(pos, king, mover.Other()) &&
				!IsSquareAttacked(pos, SquareOf(5, king.Rank()), mover.Other()) &&
				!IsSquareAttacked(pos, cs.kingTo, mover.Other()) {
				*moves = append(*moves, NewMove(king, cs.kingTo))
			}
		}
	}
	if rights.Has(QueensideFor(mover)) {
		cs := queensideSquares[mover]
		if pos.PieceAt(SquareOf(1, king.Rank())) == Empty &&
			pos.PieceAt(SquareOf(2, king.Rank())) == Empty &&
			pos.PieceAt(SquareOf(3, king.Rank())) == Empty {
			if !IsSquareAttacked(pos, king, mover.Other()) &&
				!IsSquareAttacked(pos, SquareOf(3, king.Rank()), mover.Other()) &&
				!IsSquareAttacked(pos, cs.kingTo, mover.Other()) {
				*moves = append(*moves, NewMove(king, cs.kingTo))
			}
		}
	}
}

// GenerateLegal filters GeneratePseudoLegal down to moves that do not
// leave the mover's own king in check. A pseudo-legal move that would
// capture the opposing king is pruned before Apply - legal positions
// never require this, but pseudo-legal output may contain it during
// quiescence-style orderings.
func GenerateLegal(pos *position.Position) []Move {
	mover := pos.SideToMove()
	pseudo := GeneratePseudoLegal(pos)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if captured := pos.PieceAt(m.To()); captured.Type() == King {
			continue
		}
		undo := Apply(pos, m)
		pos.SetSideToMove(mover.Other())
		inCheck := InCheck(pos, mover)
		Undo(pos, undo)
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}
