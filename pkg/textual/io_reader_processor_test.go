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
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIOReaderProcessor_Start_ScanLinesAndIndexes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := "a\nb\nc\n"
	reader := strings.NewReader(input)

	upper := ProcessorFunc[TextCarrier](func(ctx context.Context, in <-chan TextCarrier) <-chan TextCarrier {
		return Async(ctx, in, func(c TextCarrier) TextCarrier {
			return c.FromUTF8String(strings.ToUpper(c.UTF8String())).WithIndex(c.GetIndex())
		})
	})

	p := NewTextIOReaderProcessor(upper, reader)
	p.SetContext(ctx)

	outCh := p.Start()
	items, err := collectWithContext(ctx, outCh)
	require.NoError(t, err)

	sortByIndex(items)

	require.Len(t, items, 3)

	// ScanLines keeps the trailing newline, unlike bufio.ScanLines.
	require.Equal(t, "A\n", items[0].UTF8String())
	require.Equal(t, 0, items[0].GetIndex())
	require.Equal(t, "B\n", items[1].UTF8String())
	require.Equal(t, 1, items[1].GetIndex())
	require.Equal(t, "C\n", items[2].UTF8String())
	require.Equal(t, 2, items[2].GetIndex())
}

func TestIOReaderProcessor_IdentityReconstructsInput(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	const input = "Hello, world!\nThis is textual.\n"
	reader := strings.NewReader(input)

	identity := ProcessorFunc[TextCarrier](func(ctx context.Context, in <-chan TextCarrier) <-chan TextCarrier {
		return Async(ctx, in, func(c TextCarrier) TextCarrier {
			return c
		})
	})

	p := NewTextIOReaderProcessor(identity, reader)
	p.SetContext(ctx)
	p.SetSplitFunc(ScanLines)

	outCh := p.Start()
	items, err := collectWithContext(ctx, outCh)
	require.NoError(t, err)
	sortByIndex(items)

	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.UTF8String())
	}

	require.Equal(t, input, b.String())
}
