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

// Package book is an opening book keyed by a position's Zobrist hash,
// backed by an embedded BadgerDB store so lookups survive process
// restarts without shipping a custom file format. It lives outside
// the core: the console/search front end consults it before invoking
// the real search, but the core itself never imports it.
package book

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/sync/semaphore"

	"github.com/mhelmer/chessgo/internal/logging"
)

var log = logging.GetLog("book")

// maxConcurrentLoads caps how many Badger write transactions a bulk
// Load runs at once - Search itself never touches this semaphore, only
// the loader does.
const maxConcurrentLoads = 8

// Book wraps a BadgerDB store mapping a position hash to a list of
// known-good replies in UCI move text.
type Book struct {
	db  *badger.DB
	sem *semaphore.Weighted
}

// Open opens (creating if necessary) a Badger store rooted at dir.
func Open(dir string) (*Book, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("book: open %s: %w", dir, err)
	}
	return &Book{db: db, sem: semaphore.NewWeighted(maxConcurrentLoads)}, nil
}

// Close closes the underlying store.
func (b *Book) Close() error {
	return b.db.Close()
}

func key(hash uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, hash)
	return k
}

// Lookup returns the known replies for hash, if any.
func (b *Book) Lookup(hash uint64) ([]string, bool) {
	var moves []string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(hash))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &moves)
		})
	})
	if err != nil {
		return nil, false
	}
	return moves, true
}

// Load bulk-inserts entries, running up to maxConcurrentLoads Badger
// transactions concurrently to shorten the load time of a large book
// without overwhelming the store.
func (b *Book) Load(ctx context.Context, entries map[uint64][]string) error {
	errCh := make(chan error, len(entries))
	for hash, moves := range entries {
		if err := b.sem.Acquire(ctx, 1); err != nil {
			return err
		}
		go func(hash uint64, moves []string) {
			defer b.sem.Release(1)
			errCh <- b.put(hash, moves)
		}(hash, moves)
	}
	var firstErr error
	for range entries {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		log.Errorf("book: load encountered an error: %v", firstErr)
	}
	return firstErr
}

func (b *Book) put(hash uint64, moves []string) error {
	data, err := json.Marshal(moves)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(hash), data)
	})
}
