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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/mhelmer/chessgo/internal/config"
	"github.com/mhelmer/chessgo/internal/console"
	"github.com/mhelmer/chessgo/internal/fen"
	myLogging "github.com/mhelmer/chessgo/internal/logging"
	"github.com/mhelmer/chessgo/internal/movegen"
	"github.com/mhelmer/chessgo/internal/testsuite"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in MB (0 keeps the config/default value)")
	bookPath := flag.String("bookpath", "", "path to the opening book directory")
	movetimeMs := flag.Int("movetime", 0, "search time per move in milliseconds (0 keeps the config/default value)")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	fenFlag := flag.String("fen", fen.StartFen, "fen used by -perft")
	testSuite := flag.String("testsuite", "", "path to an EPD perft file to run and exit")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	parsedLvl, lvlErr := logging.LogLevel(*logLvl)
	if lvlErr == nil {
		config.LogLevel = *logLvl
	}
	config.Setup()

	if *ttSizeMB > 0 {
		config.Settings.Search.TTSizeMB = *ttSizeMB
	}
	if *bookPath != "" {
		config.Settings.Search.UseBook = true
		config.Settings.Search.BookPath = *bookPath
	}
	if *movetimeMs > 0 {
		config.Settings.Search.DefaultMovetimeMs = *movetimeMs
	}

	// most packages grab their logger from a package-level var set in
	// init(), before main() and config.Setup() have run - reset the
	// level here and re-fetch so it actually takes effect.
	if lvlErr == nil {
		myLogging.SetLevel(parsedLvl)
	}
	myLogging.GetLog("main")

	if *perftDepth > 0 {
		pos, _, err := fen.Parse(*fenFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bad -fen:", err)
			os.Exit(1)
		}
		for d := 1; d <= *perftDepth; d++ {
			start := time.Now()
			nodes := movegen.Perft(pos, d)
			fmt.Printf("perft %d: %d nodes in %s\n", d, nodes, time.Since(start))
		}
		return
	}

	if *testSuite != "" {
		cases, err := testsuite.ParseFile(*testSuite)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		result := testsuite.Run(cases)
		fmt.Println(result.Summary())
		if result.Failed > 0 {
			os.Exit(1)
		}
		return
	}

	c := console.New(bufio.NewScanner(os.Stdin), bufio.NewWriter(os.Stdout))
	if config.Settings.Search.UseBook && config.Settings.Search.BookPath != "" {
		c.Handle("book " + config.Settings.Search.BookPath)
	}
	c.Loop()
}
