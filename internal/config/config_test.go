//
// chessgo - a small chess engine, built for learning purposes
//
// MIT License
//
// Copyright (c) 2020-2026 chessgo contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"testing"
)

// make tests run in the projects root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestInit(t *testing.T) {
	Setup()
	fmt.Printf("Log level: %v\n", Settings.Log.Level)
	fmt.Printf("Log level set: %v\n", LogLevel)
	fmt.Printf("UseTT: %v\n", Settings.Search.UseTT)
	fmt.Printf("TT Size MB: %v\n", Settings.Search.TTSizeMB)
	fmt.Printf("PassedPawnBaseBonus: %v\n", Settings.Eval.PassedPawnBaseBonus)
}

func Test(t *testing.T) {
	Setup()
	fmt.Println(Settings.String())
}
