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

package testsuite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeEPD(t *testing.T, contents string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.epd")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestParseAndRunPassingCases(t *testing.T) {
	path := writeEPD(t, `
# initial position
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ; D1 20 ; D2 400 ; D3 8902
`)
	cases, err := ParseFile(path)
	assert.NoError(t, err)
	assert.Len(t, cases, 1)
	assert.Len(t, cases[0].Checks, 3)

	result := Run(cases)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 0, result.Failed)
}

func TestRunReportsFirstMismatch(t *testing.T) {
	path := writeEPD(t, `rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ; D1 19`)
	cases, err := ParseFile(path)
	assert.NoError(t, err)

	result := Run(cases)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Results[0].Passed)
	assert.Equal(t, 0, result.Results[0].Mismatch)
	assert.EqualValues(t, 20, result.Results[0].Got[0])
}

func TestParseFileRejectsMalformedLine(t *testing.T) {
	path := writeEPD(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ; notadepth")
	_, err := ParseFile(path)
	assert.Error(t, err)
}
