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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSkipBlank_DropsEmptyKeepsErrored(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	boom := errors.New("boom")
	in := Generator(
		TextFrom("one").WithIndex(0),
		TextFrom("").WithIndex(1),
		TextFrom("").WithIndex(2).WithError(boom),
		TextFrom("two").WithIndex(3),
	)

	out := SkipBlank[TextCarrier]().Apply(ctx, in)
	items, err := collectWithContext(ctx, out)
	require.NoError(t, err)
	sortByIndex(items)

	require.Len(t, items, 3)
	require.Equal(t, "one", items[0].UTF8String())
	require.Equal(t, 2, items[1].GetIndex())
	require.Equal(t, boom, items[1].GetError())
	require.Equal(t, "two", items[2].UTF8String())
}

func TestChain_SkipBlankThenSuffix(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	chain := NewChain[TextCarrier](
		SkipBlank[TextCarrier](),
		procSuffix("!"),
	)

	in := Generator(
		TextFrom("a").WithIndex(0),
		TextFrom("").WithIndex(1),
		TextFrom("b").WithIndex(2),
	)

	items, err := collectWithContext(ctx, chain.Apply(ctx, in))
	require.NoError(t, err)
	sortByIndex(items)

	require.Len(t, items, 2)
	require.Equal(t, "a!", items[0].UTF8String())
	require.Equal(t, "b!", items[1].UTF8String())
}
