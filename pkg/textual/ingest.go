// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textual

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// IngestLines scans every reader concurrently and fans the resulting tokens
// into a single channel of TextCarrier values.
//
// Each reader is scanned on its own goroutine using splitFunc (ScanLines if
// nil), grounded on the same bufio.Scanner loop as IOReaderProcessor.Start.
// Readers run under an errgroup.Group, so a scan error on any one of them
// cancels the shared context and stops the remaining readers promptly.
//
// TextCarrier.Index is the token's sequence number within its own reader, not
// a global sequence number: readers progress concurrently, so interleaving
// across readers is not deterministic. Callers that need a stable merge order
// should sort downstream by whatever grouping they care about, not solely by
// GetIndex().
//
// The returned channel is closed once every reader has been drained (EOF) or
// the context is canceled, whichever happens first. wait reports the first
// scan error encountered, if any, and blocks until all reader goroutines have
// exited; callers should always call wait after draining the channel.
func IngestLines(ctx context.Context, splitFunc bufio.SplitFunc, readers ...io.Reader) (out <-chan TextCarrier, wait func() error) {
	if splitFunc == nil {
		splitFunc = ScanLines
	}

	g, gctx := errgroup.WithContext(ctx)
	merged := make(chan TextCarrier)

	for readerIndex, r := range readers {
		r := r
		readerIndex := readerIndex
		g.Go(func() error {
			scanner := bufio.NewScanner(r)
			scanner.Split(splitFunc)

			counter := 0
			for scanner.Scan() {
				item := TextFrom(scanner.Text()).WithIndex(counter)
				counter++

				select {
				case <-gctx.Done():
					return gctx.Err()
				case merged <- item:
				}
			}

			if err := scanner.Err(); err != nil {
				slog.Error("textual: reader scan failed", "reader", readerIndex, "err", err)
				return err
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(merged)
	}()

	return merged, g.Wait
}
