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

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/PreyMa/COWStrings/pkg/cowstring"
	"github.com/PreyMa/COWStrings/pkg/textual"
	"github.com/spf13/cobra"
)

func (c *cli) newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>",
		Short: "Feed a file through textual.IngestLines and print per-line length/mode statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			var splitFunc bufio.SplitFunc
			if !c.cfg.IngestKeepNewline {
				splitFunc = bufio.ScanLines
			}

			out := cmd.OutOrStdout()
			items, wait := textual.IngestLines(cmd.Context(), splitFunc, f)

			// Chain SkipBlank (if configured) ahead of Slog, so every surviving
			// line is also recorded via the configured slog handler, not just
			// printed below.
			var stages []textual.Processor[textual.TextCarrier]
			if c.cfg.IngestSkipBlank {
				stages = append(stages, textual.SkipBlank[textual.TextCarrier]())
			}
			stages = append(stages, textual.Slog[textual.TextCarrier]("ingest"))

			logged := textual.NewChain[textual.TextCarrier](stages...).Apply(cmd.Context(), items)

			for item := range logged {
				text := item.Text
				introspection := cowstring.Introspect(&text)
				_, _ = fmt.Fprintf(out, "%d\t%s\t%d bytes\t%d code points\t%q\n",
					item.GetIndex(), introspection.Mode(), introspection.ByteUsed(), text.Len(), item.UTF8String())
			}

			return wait()
		},
	}
}
