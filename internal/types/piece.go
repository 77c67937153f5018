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

// PieceType is a colorless piece kind, used for promotion targets and
// for sliding-piece/ray logic that is shared between colors.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength = 7
)

// promoLetter/promoFromLetter only ever deal with the four promotable
// piece types, always lower-case at the Move level per the UCI move
// text contract.
var promoLetter = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
var promoFromLetter = map[byte]PieceType{'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen}

func (pt PieceType) PromotionLetter() (byte, bool) {
	l, ok := promoLetter[pt]
	return l, ok
}

// ParsePromotionLetter parses one of qrbn into a PieceType.
func ParsePromotionLetter(l byte) (PieceType, bool) {
	pt, ok := promoFromLetter[l]
	return pt, ok
}

// Piece is a piece occupying a square: one of the twelve colored
// pieces, or Empty for an unoccupied square.
type Piece int8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength = 13
)

// pieceLetters mirrors FrankyGo's pieceToString lookup table idiom,
// indexed by Piece value, Empty first.
const pieceLetters = ".PNBRQKpnbrqk"

// glyphs are the Unicode chess symbols used by the ASCII/Unicode
// renderer, indexed the same way as pieceLetters.
var glyphs = [PieceLength]rune{
	'·', // Empty -> "·"
	'♙', '♘', '♗', '♖', '♕', '♔', // white P N B R Q K
	'♟', '♞', '♝', '♜', '♛', '♚', // black p n b r q k
}

// MakePiece builds the colored Piece for a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return Empty
	}
	if c == White {
		return Piece(pt)
	}
	return Piece(int(pt) + 6)
}

// Color returns the piece's color. Undefined for Empty.
func (p Piece) Color() Color {
	if p <= WhiteKing {
		return White
	}
	return Black
}

// Type returns the colorless piece type, NoPieceType for Empty.
func (p Piece) Type() PieceType {
	if p == Empty {
		return NoPieceType
	}
	if p <= WhiteKing {
		return PieceType(p)
	}
	return PieceType(int(p) - 6)
}

// IsEmpty reports whether the square holding this piece is unoccupied.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Letter returns the FEN letter for the piece ('.' for Empty, which
// never actually appears in FEN text itself).
func (p Piece) Letter() byte {
	return pieceLetters[p]
}

// Glyph returns the Unicode chess symbol used by the ASCII renderer.
func (p Piece) Glyph() rune {
	return glyphs[p]
}

func (p Piece) String() string {
	return string(p.Letter())
}

// PieceFromLetter parses a single FEN piece letter.
func PieceFromLetter(l byte) (Piece, bool) {
	for i := 1; i < PieceLength; i++ {
		if pieceLetters[i] == l {
			return Piece(i), true
		}
	}
	return Empty, false
}
