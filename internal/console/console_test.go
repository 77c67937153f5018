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

package console

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	c := New(bufio.NewScanner(strings.NewReader("")), bufio.NewWriter(&buf))
	c.movetime = 50 * time.Millisecond
	c.maxDepth = 3
	return c, &buf
}

func TestNewGameResetsToStartPosition(t *testing.T) {
	c, buf := newTestConsole(t)
	assert.False(t, c.Handle("new"))
	assert.Contains(t, buf.String(), "rnbqkbnr/pppppppp")
}

func TestSetFenUpdatesPosition(t *testing.T) {
	c, buf := newTestConsole(t)
	assert.False(t, c.Handle("fen 8/8/8/8/8/8/8/K6k w - - 0 1"))
	assert.Contains(t, buf.String(), "fen: 8/8/8/8/8/8/8/K6k w - - 0 1")
}

func TestSetFenRejectsBadFen(t *testing.T) {
	c, buf := newTestConsole(t)
	assert.False(t, c.Handle("fen not-a-fen"))
	assert.Contains(t, buf.String(), "bad fen")
}

func TestPerftCommandReportsNodeCount(t *testing.T) {
	c, buf := newTestConsole(t)
	assert.False(t, c.Handle("perft 2"))
	assert.Contains(t, buf.String(), "perft 2: 400 nodes")
}

func TestUnknownTokenReportedAsUnrecognized(t *testing.T) {
	c, buf := newTestConsole(t)
	assert.False(t, c.Handle("zz99"))
	assert.Contains(t, buf.String(), "unrecognized command or move")
}

func TestLegalMoveIsAppliedAndEnginePliesBack(t *testing.T) {
	c, buf := newTestConsole(t)
	assert.False(t, c.Handle("e2e4"))
	assert.Contains(t, buf.String(), "engine plays")
}

func TestQuitStopsLoop(t *testing.T) {
	c, _ := newTestConsole(t)
	assert.True(t, c.Handle("quit"))
}
