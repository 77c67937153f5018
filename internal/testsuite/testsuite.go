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

// Package testsuite runs file-driven perft regression tests: each line
// is a FEN followed by one or more "D<depth> <expected-count>" pairs,
// semicolon-separated in the traditional EPD perft format. It drives
// movegen.Perft over every position/depth pair and reports mismatches.
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mhelmer/chessgo/internal/logging"
	"github.com/mhelmer/chessgo/internal/fen"
	"github.com/mhelmer/chessgo/internal/movegen"
)

var out = message.NewPrinter(language.English)
var log *logging.Logger

func init() {
	log = myLogging.GetLog("testsuite")
}

// Case is one FEN plus the depth/expected-node-count pairs to check
// against it.
type Case struct {
	FEN      string
	Checks   []DepthCheck
	LineNum  int
}

// DepthCheck is a single "D<depth> <expected>" pair.
type DepthCheck struct {
	Depth    int
	Expected uint64
}

// CaseResult is the outcome of running every DepthCheck for one Case.
type CaseResult struct {
	Case    Case
	Got     []uint64
	Passed  bool
	Mismatch int // index into Checks/Got of the first failing depth, -1 if none; 0 with an empty Got if the FEN does not parse
}

// SuiteResult summarizes a whole run.
type SuiteResult struct {
	Total  int
	Passed int
	Failed int
	Results []CaseResult
}

// ParseFile reads a perft EPD file: each non-blank, non-'#' line is
// "<fen> ; D<depth> <count> ; D<depth> <count> ...".
func ParseFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	defer f.Close()

	var cases []Case
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func parseLine(line string, lineNum int) (Case, error) {
	parts := strings.Split(line, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return Case{}, fmt.Errorf("testsuite: line %d: expected a FEN and at least one D<depth> check", lineNum)
	}

	c := Case{FEN: parts[0], LineNum: lineNum}
	for _, p := range parts[1:] {
		fields := strings.Fields(p)
		if len(fields) != 2 || !strings.HasPrefix(fields[0], "D") {
			return Case{}, fmt.Errorf("testsuite: line %d: malformed depth check %q", lineNum, p)
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil {
			return Case{}, fmt.Errorf("testsuite: line %d: bad depth in %q", lineNum, p)
		}
		expected, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return Case{}, fmt.Errorf("testsuite: line %d: bad expected count in %q", lineNum, p)
		}
		c.Checks = append(c.Checks, DepthCheck{Depth: depth, Expected: expected})
	}
	return c, nil
}

// Run executes every case and every depth check within it, stopping at
// a case's first mismatch (deeper depths under the same wrong subtree
// would just repeat the same failure at higher cost).
func Run(cases []Case) SuiteResult {
	var res SuiteResult
	for _, c := range cases {
		cr := runCase(c)
		res.Total++
		res.Results = append(res.Results, cr)
		if cr.Passed {
			res.Passed++
		} else {
			res.Failed++
			if cr.Mismatch >= len(cr.Got) {
				log.Errorf("line %d: invalid FEN %q", c.LineNum, c.FEN)
				continue
			}
			log.Errorf("line %d: perft mismatch for %q at D%d: got %d want %d",
				c.LineNum, c.FEN, c.Checks[cr.Mismatch].Depth, cr.Got[cr.Mismatch], c.Checks[cr.Mismatch].Expected)
		}
	}
	return res
}

func runCase(c Case) CaseResult {
	cr := CaseResult{Case: c, Mismatch: -1, Passed: true}
	pos, _, err := fen.Parse(c.FEN)
	if err != nil {
		cr.Passed = false
		cr.Mismatch = 0
		return cr
	}
	for i, check := range c.Checks {
		got := movegen.Perft(pos, check.Depth)
		cr.Got = append(cr.Got, got)
		if got != check.Expected {
			cr.Passed = false
			if cr.Mismatch == -1 {
				cr.Mismatch = i
			}
			break
		}
	}
	return cr
}

// Summary renders a short human-readable report line, matching the
// teacher's own out.Sprintf node-count reporting idiom.
func (r SuiteResult) Summary() string {
	return out.Sprintf("%d cases: %d passed, %d failed", r.Total, r.Passed, r.Failed)
}
