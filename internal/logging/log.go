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

// Package logging wraps github.com/op/go-logging with a single leveled,
// formatted stdout backend shared by every package that needs one.
package logging

import (
	"os"

	. "github.com/op/go-logging"
)

var level = INFO

// SetLevel adjusts the level applied to every logger vended by GetLog
// from here on. Existing loggers already returned are unaffected until
// the next GetLog call rebuilds the shared backend.
func SetLevel(l Level) {
	level = l
}

// GetLog returns a named logger backed by a formatted stdout writer.
func GetLog(name string) *Logger {
	log := MustGetLogger(name)
	backend := NewLogBackend(os.Stdout, "", 0)
	format := MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s} %{module}: %{message}`,
	)
	formatted := NewBackendFormatter(backend, format)
	leveled := AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	SetBackend(leveled)
	return log
}
