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

func TestGenerator_YieldsInOrderAndCloses(t *testing.T) {
	in := Generator("a", "b", "c")

	var got []string
	for v := range in {
		got = append(got, v)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestTextGenerator_AssignsPositionalIndex(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	items, err := collectWithContext(ctx, TextGenerator("zero", "one", "two"))
	require.NoError(t, err)
	sortByIndex(items)

	require.Len(t, items, 3)
	for i, want := range []string{"zero", "one", "two"} {
		require.Equal(t, i, items[i].GetIndex())
		require.Equal(t, want, items[i].UTF8String())
	}
}
