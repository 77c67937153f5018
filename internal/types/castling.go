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

// CastlingRights is a 4-bit set over {WK, WQ, BK, BQ}. The empty set
// (NoCastling) is its own value and the canonical "no rights" form;
// String renders it as "-" for FEN text.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
	// CastlingRightsLength is the number of distinct castling-rights
	// sets, used to size the Zobrist castling-key table.
	CastlingRightsLength = 16
)

// Has reports whether all bits of mask are present in cr.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// With returns cr with mask added.
func (cr CastlingRights) With(mask CastlingRights) CastlingRights {
	return cr | mask
}

// Without returns cr with mask removed.
func (cr CastlingRights) Without(mask CastlingRights) CastlingRights {
	return cr &^ mask
}

// KingsideFor and QueensideFor pick the relevant bit for a color, used
// by movegen when a king or rook on a given side moves.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}

// ParseCastlingRights parses a FEN castling field: "-" or a subset of
// "KQkq" without duplicates.
func ParseCastlingRights(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	if s == "" || len(s) > 4 {
		return NoCastling, false
	}
	var cr CastlingRights
	seen := map[byte]bool{}
	letterToBit := map[byte]CastlingRights{'K': WhiteKingside, 'Q': WhiteQueenside, 'k': BlackKingside, 'q': BlackQueenside}
	for i := 0; i < len(s); i++ {
		b := s[i]
		bit, ok := letterToBit[b]
		if !ok || seen[b] {
			return NoCastling, false
		}
		seen[b] = true
		cr = cr.With(bit)
	}
	return cr, true
}
