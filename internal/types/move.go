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

package types

import "strings"

// Move is a 32-bit encoded ply: 6 bits from, 6 bits to, 2 bits
// promotion piece type, 1 bit promotion flag, and a 16-bit sort value
// used by move ordering in the high half.
//
//	BITMAP 32-bit
//	|-- order value (16) --|-u-|p|--promo(2)--|---from(6)---|---to(6)---|
//	31                   16  15 14 13 12       11          6 5         0
type Move uint32

const (
	toShift    = 0
	toMask     = Move(0x3F) << toShift
	fromShift  = 6
	fromMask   = Move(0x3F) << fromShift
	promoShift = 12
	promoMask  = Move(0x3) << promoShift
	promoFlag  = Move(1) << 14
	orderShift = 16

	// MoveNone is the zero value: from==to==a1, no promotion - never a
	// legal move, so it doubles as "no move".
	MoveNone Move = 0
)

// promoTypeOrder maps the 2-bit encoded field to/from the promotable
// PieceType values Knight..Queen (values 2..5), so the field only ever
// needs 2 bits.
var promoTypeOrder = [4]PieceType{Knight, Bishop, Rook, Queen}

func promoCode(pt PieceType) Move {
	for i, p := range promoTypeOrder {
		if p == pt {
			return Move(i)
		}
	}
	return 0
}

// NewMove builds a quiet or capturing, non-promoting move.
func NewMove(from, to Square) Move {
	return Move(from)<<fromShift | Move(to)<<toShift
}

// NewPromotion builds a promoting move; promo must be one of
// Knight, Bishop, Rook, Queen.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | promoFlag | promoCode(promo)<<promoShift
}

func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Promotion returns the promotion piece type and true if m promotes.
func (m Move) Promotion() (PieceType, bool) {
	if m&promoFlag == 0 {
		return NoPieceType, false
	}
	return promoTypeOrder[(m&promoMask)>>promoShift], true
}

// Base strips the order-value bits, so two moves compare equal
// regardless of the sort key move ordering attached to either.
func (m Move) Base() Move {
	return m &^ (Move(0xFFFF) << orderShift)
}

// WithOrderKey returns m with the move-ordering sort key attached. Key
// is a signed 16-bit quantity offset to fit the unsigned field.
func (m Move) WithOrderKey(key int32) Move {
	base := m.Base()
	return base | Move(uint32(int32(key)+0x8000)&0xFFFF)<<orderShift
}

// OrderKey returns the move-ordering sort key attached by WithOrderKey,
// or 0 if none was set.
func (m Move) OrderKey() int32 {
	return int32((m>>orderShift)&0xFFFF) - 0x8000
}

// UCI renders the move as four or five character algebraic text:
// <from><to>[promo], promo always lower-case.
func (m Move) UCI() string {
	if m.Base() == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt, ok := m.Promotion(); ok {
		if l, ok := pt.PromotionLetter(); ok {
			s += string(l)
		}
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}

// ParseUCI parses four-or-five character algebraic move text. Returns
// false ("no move") on anything malformed; it does not and cannot
// check legality against a position.
func ParseUCI(s string) (Move, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, false
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return MoveNone, false
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return MoveNone, false
	}
	if len(s) == 5 {
		pt, ok := ParsePromotionLetter(s[4])
		if !ok {
			return MoveNone, false
		}
		return NewPromotion(from, to, pt), true
	}
	return NewMove(from, to), true
}

// MoveUndo captures everything needed to exactly reverse one apply: the
// ply itself, what it moved/captured, and the position fields it
// changed as a side effect. Each undo record is consumed exactly once,
// paired with its originating apply.
type MoveUndo struct {
	Move     Move
	Mover    Color
	Moved    Piece
	Captured Piece

	PrevEnPassant  Square
	PrevCastling   CastlingRights
	PrevHalfmove   int

	IsEnPassant     bool
	EPCaptureSquare Square
	EPCapturedPawn  Piece

	IsCastle        bool
	CastleRookFrom  Square
	CastleRookTo    Square
	CastleRookPiece Piece
}
