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

// Package types holds the primitive data types shared by every core
// package: squares, pieces, colors, castling rights, moves and search
// values. Nothing here depends on position, movegen or search so all
// three can import it without a cycle.
package types

import "fmt"

// Square is an index 0..63 into the board, a1=0, h1=7, a8=56, h8=63.
// SqNone is the sentinel used for "no square" (no en passant target,
// no king of a color on the board, ...).
type Square int8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8

	// SqNone is the "no square" sentinel - out of the 0..63 board range.
	SqNone Square = 64
	// SqLength is the number of real squares on the board.
	SqLength = 64
)

// SquareOf builds a Square from 0-indexed file and rank.
func SquareOf(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the 0-indexed file (0=a .. 7=h).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the 0-indexed rank (0=rank1 .. 7=rank8).
func (s Square) Rank() int {
	return int(s) / 8
}

// Valid reports whether s is one of the 64 real board squares.
func (s Square) Valid() bool {
	return s >= SqA1 && s <= SqH8
}

// String renders the square in algebraic notation, e.g. "e4".
// SqNone renders as "-".
func (s Square) String() string {
	if s == SqNone {
		return "-"
	}
	if !s.Valid() {
		return fmt.Sprintf("sq(%d)", int(s))
	}
	return fmt.Sprintf("%c%d", 'a'+s.File(), s.Rank()+1)
}

// ParseSquare parses an algebraic square like "e4". Returns SqNone and
// false if sq is not exactly two characters or out of range.
func ParseSquare(sq string) (Square, bool) {
	if len(sq) != 2 {
		return SqNone, false
	}
	file := int(sq[0] - 'a')
	rank := int(sq[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone, false
	}
	return SquareOf(file, rank), true
}
