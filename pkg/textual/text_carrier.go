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
	"errors"
	"sort"

	"github.com/PreyMa/COWStrings/pkg/cowstring"
)

// TextCarrier is a Carrier[TextCarrier] implementation that streams
// cowstring.String values instead of plain Go strings.
//
// It is useful when a pipeline stage wants to keep the copy-on-write and
// small-string benefits of cowstring.String across the whole streaming
// pipeline rather than converting to and from a plain string at every
// stage boundary.
//
// Index is an ordering hint used by Aggregate (and by IOReaderProcessor,
// which sets it to the token sequence number). Err carries a non-fatal
// processing error attached by processors.
type TextCarrier struct {
	Text  cowstring.String
	Index int
	Err   error
}

func (c TextCarrier) UTF8String() UTF8String {
	return c.Text.String()
}

func (c TextCarrier) FromUTF8String(s UTF8String) TextCarrier {
	text, err := cowstring.FromString(s)
	if err != nil {
		return TextCarrier{Text: cowstring.New(), Err: err}
	}
	return TextCarrier{Text: text}
}

func (c TextCarrier) WithIndex(idx int) TextCarrier {
	c.Index = idx
	return c
}

func (c TextCarrier) GetIndex() int {
	return c.Index
}

///////////////////////////////////////
// AggregatableCarrier implementation
///////////////////////////////////////

// Aggregate concatenates multiple TextCarrier values into one.
//
// The input slice is copied and stably sorted by Index, so callers can emit
// out-of-order fragments and still obtain a deterministic output. When
// indices are equal, the rendered text is used as a tie-breaker.
//
// Concatenation is built with Append rather than strings.Builder: the
// result starts as an empty Small String and every fragment's bytes are
// appended into it, so it stays inline while it fits and moves to its own
// Dynamic buffer once it does not, without round-tripping through a plain
// string. Append only reads each fragment's bytes, so no Clone of the
// inputs is needed or taken.
//
// Errors from all inputs are merged (using errors.Join) and attached to the
// returned value.
func (c TextCarrier) Aggregate(items []TextCarrier) TextCarrier {
	sorted := make([]TextCarrier, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Index != sorted[j].Index {
			return sorted[i].Index < sorted[j].Index
		}
		return sorted[i].UTF8String() < sorted[j].UTF8String()
	})

	result := cowstring.New()
	var aggErr error
	for _, it := range sorted {
		// Append only reads it.Text's bytes, never takes ownership of its
		// buffer, so no Clone/Release is needed here - cloning would bump
		// the original carrier's refcount with nothing to ever release it.
		if err := result.Append(&it.Text); err != nil {
			aggErr = errors.Join(aggErr, err)
		}
		if it.Err != nil {
			aggErr = errors.Join(aggErr, it.Err)
		}
	}

	return TextCarrier{Text: result, Err: aggErr}
}

func (c TextCarrier) WithError(err error) TextCarrier {
	if err == nil {
		return c
	}
	if c.Err == nil {
		c.Err = err
	} else {
		c.Err = errors.Join(c.Err, err)
	}
	return c
}

func (c TextCarrier) GetError() error {
	return c.Err
}
