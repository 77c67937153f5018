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

// castlingSquares names the corner/inside/king-destination squares
// used both by generation and by apply/undo, per mover color and side.
type castlingSquares struct {
	rookFrom, rookTo, kingTo Square
}

var kingsideSquares = [ColorLength]castlingSquares{
	White: {rookFrom: SqH1, rookTo: SqF1, kingTo: SqG1},
	Black: {rookFrom: SqH8, rookTo: SqF8, kingTo: SqG8},
}
var queensideSquares = [ColorLength]castlingSquares{
	White: {rookFrom: SqA1, rookTo: SqD1, kingTo: SqC1},
	Black: {rookFrom: SqA8, rookTo: SqD8, kingTo: SqC8},
}

func homeKingSquare(c Color) Square {
	if c == White {
		return SqE1
	}
	return SqE8
}

// Apply performs one ply against pos and returns the undo record to
// reverse it. It trusts the move is pseudo-legal against the current
// position - behavior is undefined for a move with no corresponding
// piece on its From square. Apply does NOT toggle side to move; the
// caller does that after Apply returns, and Undo toggles it back.
func Apply(pos *position.Position, m Move) MoveUndo {
	mover := pos.SideToMove()
	from, to := m.From(), m.To()
	moved := pos.PieceAt(from)

	undo := MoveUndo{
		Move:          m,
		Mover:         mover,
		Moved:         moved,
		PrevEnPassant: pos.EnPassant(),
		PrevCastling:  pos.CastlingRights(),
		PrevHalfmove:  pos.Halfmove(),
	}

	prevEP := pos.EnPassant()
	pos.SetEnPassant(SqNone)

	isEnPassant := moved.Type() == Pawn && to == prevEP && pos.PieceAt(to) == Empty && from.File() != to.File()
	if isEnPassant {
		capSq := SquareOf(to.File(), from.Rank())
		undo.IsEnPassant = true
		undo.EPCaptureSquare = capSq
		undo.EPCapturedPawn = pos.PieceAt(capSq)
		pos.SetPieceAt(capSq, Empty)
	}

	captured := pos.PieceAt(to)
	undo.Captured = captured

	placed := moved
	if promo, ok := m.Promotion(); ok {
		placed = MakePiece(mover, promo)
	}
	pos.SetPieceAt(from, Empty)
	pos.SetPieceAt(to, placed)

	// Castling-rights bookkeeping: king move clears both of the mover's
	// rights; a rook move or a rook capture on its home corner clears
	// only that file's right. The capture check must gate on `to`
	// being exactly the corner square, not merely the captured piece's
	// type, or a rook captured mid-board would wrongly strip rights.
	newRights := pos.CastlingRights()
	if moved.Type() == King {
		newRights = newRights.Without(KingsideFor(mover)).Without(QueensideFor(mover))
	}
	if moved.Type() == Rook {
		if from == kingsideSquares[mover].rookFrom {
			newRights = newRights.Without(KingsideFor(mover))
		} else if from == queensideSquares[mover].rookFrom {
			newRights = newRights.Without(QueensideFor(mover))
		}
	}
	if captured.Type() == Rook {
		opp := mover.Other()
		if to == kingsideSquares[opp].rookFrom {
			newRights = newRights.Without(KingsideFor(opp))
		} else if to == queensideSquares[opp].rookFrom {
			newRights = newRights.Without(QueensideFor(opp))
		}
	}
	pos.SetCastlingRights(newRights)

	if moved.Type() == King && from == homeKingSquare(mover) {
		var cs castlingSquares
		isCastle := true
		switch to {
		case kingsideSquares[mover].kingTo:
			cs = kingsideSquares[mover]
		case queensideSquares[mover].kingTo:
			cs = queensideSquares[mover]
		default:
			isCastle = false
		}
		if isCastle {
			rookPiece := pos.PieceAt(cs.rookFrom)
			pos.SetPieceAt(cs.rookFrom, Empty)
			pos.SetPieceAt(cs.rookTo, rookPiece)
			undo.IsCastle = true
			undo.CastleRookFrom = cs.rookFrom
			undo.CastleRookTo = cs.rookTo
			undo.CastleRookPiece = rookPiece
		}
	}

	if moved.Type() == Pawn {
		df := to.Rank() - from.Rank()
		if df == 2 || df == -2 {
			pos.SetEnPassant(SquareOf(from.File(), (from.Rank()+to.Rank())/2))
		}
	}

	if moved.Type() == Pawn || captured != Empty || isEnPassant {
		_ = pos.SetHalfmove(0)
	} else {
		_ = pos.SetHalfmove(pos.Halfmove() + 1)
	}

	return undo
}

// Undo reverses exactly the ply described by undo, restoring piece
// placement, castling rights, en-passant target and halfmove clock,
// and toggles the side to move back to undo.Mover.
func Undo(pos *position.Position, undo MoveUndo) {
	from, to := undo.Move.From(), undo.Move.To()

	if undo.IsCastle {
		pos.SetPieceAt(undo.CastleRookTo, Empty)
		pos.SetPieceAt(undo.CastleRookFrom, undo.CastleRookPiece)
	}

	pos.SetPieceAt(from, undo.Moved)
	if undo.IsEnPassant {
		pos.SetPieceAt(to, Empty)
		pos.SetPieceAt(undo.EPCaptureSquare, undo.EPCapturedPawn)
	} else {
		pos.SetPieceAt(to, undo.Captured)
	}

	pos.SetEnPassant(undo.PrevEnPassant)
	pos.SetCastlingRights(undo.PrevCastling)
	_ = pos.SetHalfmove(undo.PrevHalfmove)

	pos.SetSideToMove(undo.Mover)
}
