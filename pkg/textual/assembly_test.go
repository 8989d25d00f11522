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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// procSuffix returns a Processor[TextCarrier] that appends suffix to Text.
func procSuffix(suffix string) Processor[TextCarrier] {
	return ProcessorFunc[TextCarrier](func(ctx context.Context, in <-chan TextCarrier) <-chan TextCarrier {
		return Async(ctx, in, func(t TextCarrier) TextCarrier {
			updated := t.FromUTF8String(t.UTF8String() + suffix).WithIndex(t.GetIndex())
			if err := t.GetError(); err != nil {
				updated = updated.WithError(err)
			}
			return updated
		})
	})
}

func TestChain_SequentialAndIgnoresNil(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	chain := NewChain[TextCarrier](
		procSuffix("A"),
		nil, // should be ignored
		procSuffix("B"),
	)

	in := Generator(TextFrom("X").WithIndex(42))
	outCh := chain.Apply(ctx, in)

	items, err := collectWithContext(ctx, outCh)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "XAB", items[0].UTF8String())
	require.Equal(t, 42, items[0].GetIndex())
}

func TestChain_NoProcessorsReturnsInputChannel(t *testing.T) {
	chain := NewChain[TextCarrier]()

	in := make(chan TextCarrier)
	var inR <-chan TextCarrier = in

	out := chain.Apply(context.Background(), inR)
	require.Equal(t, inR, out, "expected Apply to return the input channel when no processors are configured")
	close(in)
}
