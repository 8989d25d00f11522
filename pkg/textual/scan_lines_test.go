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
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PreyMa/COWStrings/pkg/cowstring"
	"github.com/stretchr/testify/require"
)

// TestScanLines_TokensAreValidCowstringBoundaries checks ScanLines's central
// invariant directly against cowstring.String rather than bare []byte:
// every token it produces, including ones that split a line containing
// multi-byte runes, decodes cleanly via cowstring.FromBytes with no rune
// ever cut across a token boundary.
func TestScanLines_TokensAreValidCowstringBoundaries(t *testing.T) {
	const input = "héllo\nwörld\n日本語\nlast (no newline)"

	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(ScanLines)

	var rebuilt strings.Builder
	var tokenCount int
	for scanner.Scan() {
		tokenCount++
		s, err := cowstring.FromBytes(scanner.Bytes())
		require.NoError(t, err, "FromBytes(%q)", scanner.Bytes())
		require.True(t, utf8.Valid(s.Bytes()), "token %q must be valid UTF-8 on its own", scanner.Bytes())
		rebuilt.WriteString(s.String())
	}
	require.NoError(t, scanner.Err())

	require.Equal(t, 4, tokenCount)
	require.Equal(t, input, rebuilt.String())
}

func TestScanLines_EmptyLineYieldsEmptyToken(t *testing.T) {
	advance, token, err := ScanLines([]byte("\nrest"), false)
	require.NoError(t, err)
	require.Equal(t, 1, advance)
	require.Equal(t, []byte("\n"), token)
}

func TestScanLines_FinalLineWithoutNewlineAtEOF(t *testing.T) {
	advance, token, err := ScanLines([]byte("tail"), true)
	require.NoError(t, err)
	require.Equal(t, 4, advance)
	require.Equal(t, []byte("tail"), token)
}
