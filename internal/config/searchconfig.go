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

package config

// searchConfiguration holds the configuration of a search instance.
// Only knobs the search subsystem actually reads live here - this is
// intentionally much smaller than a full UCI engine's options set,
// since pruning techniques like null-move or late-move reductions are
// not part of this engine's search.
type searchConfiguration struct {
	// Opening book
	UseBook  bool
	BookPath string

	// Transposition table
	UseTT  bool
	TTSizeMB int

	// Quiescence / check extension
	UseQuiescence bool
	UseCheckExt   bool

	// Defaults for a timed search when the caller does not override them
	DefaultMaxDepth   int
	DefaultMovetimeMs int

	// Contempt applied to a draw score when the mover is materially ahead
	Contempt int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/books/book.db"

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64

	Settings.Search.UseQuiescence = true
	Settings.Search.UseCheckExt = true

	Settings.Search.DefaultMaxDepth = 64
	Settings.Search.DefaultMovetimeMs = 2000

	Settings.Search.Contempt = -15
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupSearch() {
}
