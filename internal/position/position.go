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

// Package position represents a mutable chess board: piece placement,
// side to move, castling rights, en-passant target, halfmove clock,
// and an incrementally maintained 64-bit Zobrist hash.
//
// Every mutator keeps the hash consistent by XOR-removing the key for
// the old value and XOR-adding the key for the new one before the
// field itself is replaced. Nothing here parses or renders FEN, and
// nothing here knows about moves - those are movegen's job, driven
// through these same primitive mutators.
package position

import (
	"fmt"

	"github.com/op/go-logging"

	myLogging "github.com/mhelmer/chessgo/internal/logging"
	. "github.com/mhelmer/chessgo/internal/types"
	"github.com/mhelmer/chessgo/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("position")
}

// Position holds one chess board state. Create with NewEmpty();
// fen.Parse builds one from FEN text.
type Position struct {
	board           [SqLength]Piece
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	hash            uint64

	// kingSquare is maintained incrementally alongside board for O(1)
	// check detection; it has no effect on the hash.
	kingSquare [ColorLength]Square
}

// NewEmpty returns a Position with an empty board, White to move, no
// castling rights, no en-passant target and a zero halfmove clock.
func NewEmpty() *Position {
	zobrist.Init()
	p := &Position{
		enPassantSquare: SqNone,
		kingSquare:      [ColorLength]Square{SqNone, SqNone},
	}
	for sq := Square(0); sq < SqLength; sq++ {
		p.board[sq] = Empty
	}
	p.hash = p.RecomputeHash()
	return p
}

// PieceAt returns the piece on sq, or Empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// SetPieceAt places piece (which may be Empty) on sq, updating the
// Zobrist hash by XOR-removing the old piece-square key and XOR-adding
// the new one.
func (p *Position) SetPieceAt(sq Square, piece Piece) {
	old := p.board[sq]
	if old != Empty {
		p.hash ^= zobrist.PieceSquare[old][sq]
		if old.Type() == King && p.kingSquare[old.Color()] == sq {
			p.kingSquare[old.Color()] = SqNone
		}
	}
	p.board[sq] = piece
	if piece != Empty {
		p.hash ^= zobrist.PieceSquare[piece][sq]
		if piece.Type() == King {
			p.kingSquare[piece.Color()] = sq
		}
	}
}

// KingSquare returns the square of color's king, or SqNone if that
// color has no king on the board.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// SetSideToMove sets the side to move, toggling the side-to-move key
// in the hash only when the value actually changes.
func (p *Position) SetSideToMove(c Color) {
	if c == p.sideToMove {
		return
	}
	p.hash ^= zobrist.SideToMove
	p.sideToMove = c
}

// CastlingRights returns the current castling rights set.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// SetCastlingRights replaces the castling rights, XORing out the old
// castling-set key and XORing in the new one.
func (p *Position) SetCastlingRights(cr CastlingRights) {
	if cr == p.castlingRights {
		return
	}
	p.hash ^= zobrist.Castling[p.castlingRights]
	p.hash ^= zobrist.Castling[cr]
	p.castlingRights = cr
}

// EnPassant returns the en-passant target square, or SqNone.
func (p *Position) EnPassant() Square {
	return p.enPassantSquare
}

// SetEnPassant sets the en-passant target (SqNone clears it), XORing
// out the old EP-file key (if any) and XORing in the new one (if any).
func (p *Position) SetEnPassant(sq Square) {
	if sq == p.enPassantSquare {
		return
	}
	if p.enPassantSquare != SqNone {
		p.hash ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
	}
	p.enPassantSquare = sq
	if sq != SqNone {
		p.hash ^= zobrist.EnPassantFile[sq.File()]
	}
}

// Halfmove returns the halfmove clock.
func (p *Position) Halfmove() int {
	return p.halfmoveClock
}

// SetHalfmove sets the halfmove clock. n must be non-negative; negative
// input is rejected and leaves the field unchanged.
func (p *Position) SetHalfmove(n int) error {
	if n < 0 {
		return fmt.Errorf("halfmove clock must be non-negative, got %d", n)
	}
	p.halfmoveClock = n
	return nil
}

// Hash returns the current incrementally maintained 64-bit Zobrist hash.
func (p *Position) Hash() uint64 {
	return p.hash
}

// RecomputeHash recomputes the hash from scratch: piece-square keys for
// every occupied square, the side key iff Black to move, the castling
// key for the current rights set, and the en-passant file key iff a
// target is present. Used to seed the hash of a new empty position and
// to cross-check the incrementally maintained hash.
func (p *Position) RecomputeHash() uint64 {
	var h uint64
	for sq := Square(0); sq < SqLength; sq++ {
		if piece := p.board[sq]; piece != Empty {
			h ^= zobrist.PieceSquare[piece][sq]
		}
	}
	if p.sideToMove == Black {
		h ^= zobrist.SideToMove
	}
	h ^= zobrist.Castling[p.castlingRights]
	if p.enPassantSquare != SqNone {
		h ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
	}
	return h
}

// AssertHashConsistent is a debug-build assertion helper: it logs and
// returns false if the incremental hash has drifted from a from-scratch
// recomputation. Callers (currently the tests) decide what to do with a
// false result.
func (p *Position) AssertHashConsistent() bool {
	if want := p.RecomputeHash(); want != p.hash {
		log.Errorf("hash inconsistent: incremental=%x recomputed=%x", p.hash, want)
		return false
	}
	return true
}

// Clone returns a deep copy. Search and movegen generally prefer
// apply/undo to cloning, but a copy is occasionally useful (e.g. the
// opening book probing a position without disturbing the caller's).
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}
