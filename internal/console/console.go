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

// Package console implements a small interactive command loop around
// Position/movegen/search - not part of the engine's correctness
// surface, just the thing that drives it end to end the way FrankyGo's
// internal/uci drives FrankyGo's engine.
package console

import (
	"bufio"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mhelmer/chessgo/internal/book"
	"github.com/mhelmer/chessgo/internal/config"
	"github.com/mhelmer/chessgo/internal/fen"
	myLogging "github.com/mhelmer/chessgo/internal/logging"
	"github.com/mhelmer/chessgo/internal/movegen"
	"github.com/mhelmer/chessgo/internal/position"
	"github.com/mhelmer/chessgo/internal/render"
	"github.com/mhelmer/chessgo/internal/search"
	. "github.com/mhelmer/chessgo/internal/types"
)

var out = message.NewPrinter(language.English)
var log *logging.Logger

func init() {
	log = myLogging.GetLog("console")
}

// Console owns the session's position, searcher and (optional)
// opening book across a run of the command loop.
type Console struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos      *position.Position
	fullmove int
	searcher *search.Searcher
	book     *book.Book

	movetime time.Duration
	maxDepth int
}

// New builds a Console starting from the standard start position.
func New(in *bufio.Scanner, outW *bufio.Writer) *Console {
	pos, fullmove, _ := fen.Parse(fen.StartFen)
	return &Console{
		InIo:     in,
		OutIo:    outW,
		pos:      pos,
		fullmove: fullmove,
		searcher: search.NewSearcher(),
		movetime: time.Duration(config.Settings.Search.DefaultMovetimeMs) * time.Millisecond,
		maxDepth: config.Settings.Search.DefaultMaxDepth,
	}
}

// Loop reads and handles commands from InIo until "quit" or EOF.
func (c *Console) Loop() {
	c.printBoard()
	for c.InIo.Scan() {
		if c.Handle(strings.TrimSpace(c.InIo.Text())) {
			return
		}
	}
}

// Handle processes a single command line. Returns true if the console
// should stop looping ("quit" was received).
func (c *Console) Handle(line string) bool {
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit":
		return true
	case "new":
		c.newGame()
	case "fen":
		c.setFen(strings.TrimSpace(strings.TrimPrefix(line, fields[0])))
	case "perft":
		c.perft(fields)
	case "book":
		c.openBook(fields)
	default:
		c.move(fields[0])
	}
	return false
}

func (c *Console) newGame() {
	pos, fullmove, err := fen.Parse(fen.StartFen)
	if err != nil {
		log.Errorf("new: %v", err)
		return
	}
	c.pos = pos
	c.fullmove = fullmove
	c.searcher.NewGame()
	c.printBoard()
}

func (c *Console) setFen(s string) {
	pos, fullmove, err := fen.Parse(s)
	if err != nil {
		c.println(out.Sprintf("bad fen: %v", err))
		log.Warningf("fen %q: %v", s, err)
		return
	}
	c.pos = pos
	c.fullmove = fullmove
	c.printBoard()
}

func (c *Console) perft(fields []string) {
	depth := 4
	if len(fields) > 1 {
		d, err := strconv.Atoi(fields[1])
		if err != nil {
			c.println(out.Sprintf("bad perft depth %q", fields[1]))
			return
		}
		depth = d
	}
	start := time.Now()
	nodes := movegen.Perft(c.pos, depth)
	elapsed := time.Since(start)
	c.println(out.Sprintf("perft %d: %d nodes in %s", depth, nodes, elapsed))
}

func (c *Console) openBook(fields []string) {
	if len(fields) < 2 {
		c.println("book: missing path")
		return
	}
	if c.book != nil {
		_ = c.book.Close()
		c.book = nil
	}
	b, err := book.Open(fields[1])
	if err != nil {
		c.println(out.Sprintf("book: %v", err))
		log.Warningf("book open %q: %v", fields[1], err)
		return
	}
	c.book = b
	c.println(out.Sprintf("book loaded from %s", fields[1]))
}

// move applies a UCI move typed by the user, then replies with the
// engine's own move: an opening-book hit first, the real search on a
// miss.
func (c *Console) move(token string) {
	m, ok := ParseUCI(token)
	if !ok {
		c.println(out.Sprintf("unrecognized command or move: %s", token))
		return
	}
	if !c.isLegal(m) {
		c.println(out.Sprintf("illegal move: %s", token))
		return
	}
	c.applyMove(m)
	c.printBoard()

	reply, ok := c.bookMove()
	if !ok {
		reply, score := c.searchMove()
		if reply == MoveNone {
			c.println("no legal reply - game over")
			return
		}
		c.applyMove(reply)
		c.println(out.Sprintf("engine plays %s (score %d)", reply.UCI(), score))
		c.printBoard()
		return
	}
	c.applyMove(reply)
	c.println(out.Sprintf("engine plays %s (from book)", reply.UCI()))
	c.printBoard()
}

func (c *Console) isLegal(m Move) bool {
	for _, legal := range movegen.GenerateLegal(c.pos) {
		if legal.Base() == m.Base() {
			return true
		}
	}
	return false
}

func (c *Console) applyMove(m Move) {
	mover := c.pos.SideToMove()
	movegen.Apply(c.pos, m)
	c.pos.SetSideToMove(mover.Other())
	if mover == Black {
		c.fullmove++
	}
}

// bookMove looks up the current position's reply list in the opening
// book, if one is loaded, and returns the first listed move.
func (c *Console) bookMove() (Move, bool) {
	if c.book == nil {
		return MoveNone, false
	}
	moves, ok := c.book.Lookup(c.pos.Hash())
	if !ok || len(moves) == 0 {
		return MoveNone, false
	}
	m, ok := ParseUCI(moves[0])
	if !ok || !c.isLegal(m) {
		return MoveNone, false
	}
	return m, true
}

func (c *Console) searchMove() (Move, Value) {
	deadline := time.Now().Add(c.movetime)
	res := c.searcher.SearchTimed(c.pos, c.maxDepth, deadline, search.DrawContext{})
	return res.BestMove, res.Score
}

func (c *Console) printBoard() {
	c.println(render.Board(c.pos))
	c.println(out.Sprintf("fen: %s", fen.Of(c.pos, c.fullmove)))
}

func (c *Console) println(s string) {
	_, _ = c.OutIo.WriteString(s)
	_, _ = c.OutIo.WriteString("\n")
	_ = c.OutIo.Flush()
}
