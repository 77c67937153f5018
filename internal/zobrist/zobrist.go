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

// Package zobrist holds the process-wide table of Zobrist keys used to
// incrementally hash a position: one key per (piece, square), one per
// castling-rights set, one per en-passant file, and one side-to-move
// key. The table is deterministic - seeded from a fixed constant via a
// SplitMix64 sequence - so hashes, the transposition table and perft
// runs are reproducible run to run.
package zobrist

import (
	"sync"

	. "github.com/mhelmer/chessgo/internal/types"
)

// seed is the fixed SplitMix64 seed. Changing it changes every hash in
// the engine; it must never vary between runs.
const seed uint64 = 0x9E3779B97F4A7C15

var (
	once sync.Once

	// PieceSquare[piece][square] keys every occupied square.
	PieceSquare [PieceLength][SqLength]uint64
	// Castling[rights] keys the 16 possible castling-rights sets.
	Castling [CastlingRightsLength]uint64
	// EnPassantFile[file] keys the 8 possible en-passant files.
	EnPassantFile [8]uint64
	// SideToMove is XORed in whenever Black is to move.
	SideToMove uint64
)

// splitmix64 is the standard SplitMix64 generator: each call advances
// state by the golden-ratio increment and mixes the result through two
// xorshift/multiply rounds (shifts of 30 and 27) before a final
// xorshift by 31.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Init initializes the key table exactly once, lazily, from the fixed
// seed. Safe to call repeatedly or concurrently; only the first call
// has any effect. Position construction calls this before reading any
// key so the table is always ready before it is needed.
func Init() {
	once.Do(func() {
		gen := &splitmix64{state: seed}
		for p := Piece(0); p < PieceLength; p++ {
			for sq := 0; sq < SqLength; sq++ {
				PieceSquare[p][sq] = gen.next()
			}
		}
		for i := range Castling {
			Castling[i] = gen.next()
		}
		for i := range EnPassantFile {
			EnPassantFile[i] = gen.next()
		}
		SideToMove = gen.next()
	})
}
