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
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIngestLines_MergesAllReaders(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	a := strings.NewReader("a1\na2\n")
	b := strings.NewReader("b1\nb2\nb3\n")

	out, wait := IngestLines(ctx, nil, a, b)

	var got []string
	for item := range out {
		got = append(got, item.UTF8String())
	}

	require.NoError(t, wait())
	require.Len(t, got, 5)
	require.ElementsMatch(t, []string{"a1\n", "a2\n", "b1\n", "b2\n", "b3\n"}, got)
}

type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestIngestLines_PropagatesReaderError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	good := strings.NewReader("ok1\nok2\n")
	var bad io.Reader = erroringReader{}

	out, wait := IngestLines(ctx, nil, good, bad)

	for range out {
		// Drain until closed; the erroring reader yields no tokens.
	}

	require.Error(t, wait(), "expected wait to return an error from the failing reader")
}
