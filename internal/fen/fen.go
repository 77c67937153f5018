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

// Package fen parses and renders Forsyth-Edwards board text. It knows
// nothing about move legality - a syntactically valid FEN is accepted
// even if the position it describes could never arise from a legal
// game (e.g. two kings of the same color).
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mhelmer/chessgo/internal/position"
	. "github.com/mhelmer/chessgo/internal/types"
)

// StartFen is the standard starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	placementRe = regexp.MustCompile(`^[1-8pPnNbBrRqQkK/]+$`)
	sideRe      = regexp.MustCompile(`^[wb]$`)
	epRe        = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// Parse parses a FEN string into a Position and the fullmove number
// (defaulting to 1 when the field is absent). It rejects syntactically
// invalid input without partially mutating anything - the returned
// Position is either fully valid or nil.
func Parse(s string) (*position.Position, int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 4 {
		return nil, 0, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	placement, side, castling, ep := fields[0], fields[1], fields[2], fields[3]
	halfmove := "0"
	fullmove := "1"
	if len(fields) >= 5 {
		halfmove = fields[4]
	}
	if len(fields) >= 6 {
		fullmove = fields[5]
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, 0, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	if !placementRe.MatchString(placement) {
		return nil, 0, fmt.Errorf("fen: invalid piece placement %q", placement)
	}
	if !sideRe.MatchString(side) {
		return nil, 0, fmt.Errorf("fen: invalid side to move %q", side)
	}
	rights, ok := ParseCastlingRights(castling)
	if !ok {
		return nil, 0, fmt.Errorf("fen: invalid castling rights %q", castling)
	}
	if !epRe.MatchString(ep) {
		return nil, 0, fmt.Errorf("fen: invalid en-passant square %q", ep)
	}

	halfmoveN, err := strconv.Atoi(halfmove)
	if err != nil || halfmoveN < 0 {
		return nil, 0, fmt.Errorf("fen: invalid halfmove clock %q", halfmove)
	}
	fullmoveN, err := strconv.Atoi(fullmove)
	if err != nil || fullmoveN < 1 {
		return nil, 0, fmt.Errorf("fen: invalid fullmove number %q", fullmove)
	}

	pos := position.NewEmpty()
	for rankIdx, rankStr := range ranks {
		rank := 7 - rankIdx
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := PieceFromLetter(byte(ch))
			if !ok {
				return nil, 0, fmt.Errorf("fen: invalid piece letter %q", ch)
			}
			if file > 7 {
				return nil, 0, fmt.Errorf("fen: rank %d overflows the board", rankIdx+1)
			}
			pos.SetPieceAt(SquareOf(file, rank), piece)
			file++
		}
		if file != 8 {
			return nil, 0, fmt.Errorf("fen: rank %d does not sum to 8 files", rankIdx+1)
		}
	}

	mover, _ := ParseColor(side)
	pos.SetSideToMove(mover)
	pos.SetCastlingRights(rights)

	if ep != "-" {
		sq, ok := ParseSquare(ep)
		if !ok {
			return nil, 0, fmt.Errorf("fen: invalid en-passant square %q", ep)
		}
		pos.SetEnPassant(sq)
	}

	if err := pos.SetHalfmove(halfmoveN); err != nil {
		return nil, 0, fmt.Errorf("fen: %w", err)
	}

	return pos, fullmoveN, nil
}

// Of renders pos and fullmove back to FEN text.
func Of(pos *position.Position, fullmove int) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(SquareOf(file, rank))
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(p.Letter())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(pos.SideToMove().String())

	b.WriteByte(' ')
	b.WriteString(pos.CastlingRights().String())

	b.WriteByte(' ')
	if pos.EnPassant() == SqNone {
		b.WriteByte('-')
	} else {
		b.WriteString(pos.EnPassant().String())
	}

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.Halfmove()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(fullmove))

	return b.String()
}
