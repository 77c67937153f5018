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

// Package eval provides a static position evaluator: material, piece
// square tables, a phase-weighted king table, and a handful of
// positional bonuses/penalties. It never searches - Evaluate always
// looks only at the position handed to it.
package eval

import (
	. "github.com/mhelmer/chessgo/internal/types"
)

// MaterialValue gives each piece type's value in centipawns. Kings are
// priced at 0 - they are never traded and never enter material sums.
var MaterialValue = [PieceTypeLength]Value{
	NoPieceType: 0,
	Pawn:        100,
	Knight:      320,
	Bishop:      330,
	Rook:        500,
	Queen:       900,
	King:        0,
}

// phaseWeight is how much each piece type (other than king/pawn)
// contributes to the game phase counter, which runs from 0 (all major/
// minor pieces traded off) to MaxPhase (full starting material).
var phaseWeight = [PieceTypeLength]int{
	Knight: 1,
	Bishop: 1,
	Rook:   2,
	Queen:  4,
}

// MaxPhase is the phase value of the starting position: 8 minors (1
// each) + 4 rooks (2 each) + 2 queens (4 each) = 8+8+8 = 24.
const MaxPhase = 24
