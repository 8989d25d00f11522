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

// Package cowstring implements a copy-on-write, small-string-optimized
// UTF-8 string value.
//
// A String holds its bytes in one of three representations: Small (inline,
// no allocation, up to smallCapacity bytes including the terminator),
// Literal (a borrowed, caller-owned byte slice that is never written
// through) or Dynamic (a heap buffer from pkg/rcbuffer, reference-counted so
// that Clone can be cheap and mutation only copies when the buffer is
// actually shared).
//
// Go has neither copy constructors nor destructors, so two operations that
// are implicit in the source are explicit methods here: Clone takes the
// place of the copy constructor (it is the only supported way to create a
// second holder of a Dynamic String's buffer - a plain Go assignment aliases
// the buffer without telling the reference counter), and Release takes the
// place of the destructor (call it, typically via defer, to give back this
// holder's share of the buffer; the reference count only drops on Release,
// never through garbage collection).
package cowstring

import (
	"github.com/PreyMa/COWStrings/pkg/char"
	"github.com/PreyMa/COWStrings/pkg/rcbuffer"
)

// smallCapacity is the size of the inline buffer, S in the growth formula
// max(old*2, required, 2*S). It includes the byte that doubles as the mode
// discriminator, so the largest inline content is smallCapacity-1 bytes.
const smallCapacity = 32

// String is a copy-on-write UTF-8 string. Its zero value is not ready for
// use; construct one with New, FromBytes, FromString, FromLiteral or
// LiteralString.
//
// A String in Small or Literal mode may be copied freely with a plain Go
// assignment. A String in Dynamic mode must not be copied that way: use
// Clone to create a second holder that the reference counter knows about,
// or the two copies will silently alias the same buffer.
type String struct {
	small      [smallCapacity]byte
	lit        []byte
	buf        *rcbuffer.Buffer
	used       uint64
	codePoints uint64
}

// New returns an empty Small String.
func New() String {
	var s String
	s.small[smallCapacity-1] = smallCapacity - 1
	s.used = 1
	return s
}

// FromBytes copies b into a new String, choosing Small or Dynamic mode
// depending on whether it fits inline.
func FromBytes(b []byte) (String, error) {
	var s String
	used := uint64(len(b)) + 1
	if used <= smallCapacity {
		copy(s.small[:], b)
		s.small[used-1] = 0
		s.small[smallCapacity-1] = byte(smallCapacity - used)
		s.used = used
		return s, nil
	}

	capNeeded := maxU64(used, smallCapacity*2)
	buf, err := rcbuffer.Allocate(int(capNeeded))
	if err != nil {
		return String{}, err
	}
	dst := buf.Bytes()
	copy(dst, b)
	dst[used-1] = 0
	s.setDiscriminator(discDynamic)
	s.buf = buf
	s.used = used
	return s, nil
}

// FromString is FromBytes for a Go string.
func FromString(str string) (String, error) {
	return FromBytes([]byte(str))
}

// FromLiteral wraps data without copying it. data must end with a trailing
// zero byte, exactly like a C array-literal initializer; LiteralString is the
// convenience to use when starting from a plain Go string instead. If data
// is short enough it is copied inline as Small regardless, matching the
// source's array-length overload which only chooses Literal once the
// content no longer fits in the inline buffer.
//
// The caller must not mutate data afterwards. Unlike the C++ original,
// there is no lifetime contract to uphold beyond that: Go's garbage
// collector keeps data's backing array alive for as long as the returned
// String references it.
func FromLiteral(data []byte) (String, error) {
	if len(data) == 0 || data[len(data)-1] != 0 {
		return String{}, ErrLiteralNotTerminated
	}

	var s String
	used := uint64(len(data))
	if used <= smallCapacity {
		copy(s.small[:], data)
		s.small[smallCapacity-1] = byte(smallCapacity - used)
		s.used = used
		return s, nil
	}

	s.setDiscriminator(discLiteral)
	s.lit = data
	s.used = used
	return s, nil
}

// LiteralString copies str once into a new NUL-terminated byte slice and
// passes it to FromLiteral, so the result is Literal mode over that slice
// for strings too long to inline, and Small otherwise. Synthesizing the
// terminator this way is always safe in Go: the concatenation below
// allocates a new backing array that nothing else writes to and that the
// garbage collector keeps alive for as long as the returned String holds
// onto it.
func LiteralString(str string) String {
	data := []byte(str + "\x00")
	s, _ := FromLiteral(data)
	return s
}

// Clone returns a second, independent-to-mutate holder of s. In Small and
// Literal mode this is a plain value copy; in Dynamic mode it increments
// the underlying buffer's reference count, deferring the actual byte copy
// until one of the two holders is next mutated.
func (s *String) Clone() String {
	clone := *s
	if s.isDynamic() && s.buf != nil {
		clone.buf = s.buf.Clone()
	}
	return clone
}

// Release returns s to an empty Small String, decrementing the Dynamic
// buffer's reference count if s held one. Call it when a Dynamic String's
// Go-level scope ends: it is the only thing that lowers the count, so a
// remaining holder drops back from Shared to Owned only after its siblings
// have been released, not when they become unreachable.
func (s *String) Release() {
	if s.isDynamic() && s.buf != nil {
		s.buf.Release()
	}
	*s = New()
}

// ByteUsed returns the number of bytes in use, including the terminator
// slot. It is always at least 1, even for an empty String.
func (s *String) ByteUsed() uint64 {
	return s.used
}

// ByteCap returns the inline/allocated capacity in bytes. It is
// smallCapacity for Small mode, 0 for Literal (a Literal String cannot be
// mutated in place, ever), and the underlying buffer's capacity for
// Dynamic.
func (s *String) ByteCap() uint64 {
	switch {
	case s.isSmall():
		return smallCapacity
	case s.isLiteral():
		return 0
	default:
		if s.buf == nil {
			return 0
		}
		return uint64(s.buf.Capacity())
	}
}

// IsEmpty reports whether the String has zero content bytes.
func (s *String) IsEmpty() bool {
	return s.used <= 1
}

// Bytes returns the content bytes, not including the terminator. The slice
// is a view; callers must not mutate it. It becomes invalid after any
// subsequent mutating call on s.
func (s *String) Bytes() []byte {
	switch {
	case s.isSmall():
		return s.small[:s.used-1]
	case s.isLiteral():
		return s.lit[:s.used-1]
	default:
		if s.buf == nil {
			return nil
		}
		return s.buf.Bytes()[:s.used-1]
	}
}

// CString returns the content bytes plus the trailing zero byte.
func (s *String) CString() []byte {
	switch {
	case s.isSmall():
		return s.small[:s.used]
	case s.isLiteral():
		return s.lit[:s.used]
	default:
		if s.buf == nil {
			return []byte{0}
		}
		return s.buf.Bytes()[:s.used]
	}
}

// String implements fmt.Stringer.
func (s *String) String() string {
	return string(s.Bytes())
}

// Len returns the number of UTF-8 code points. Small mode recounts on every
// call; Literal and Dynamic mode cache the result until the next mutation
// invalidates it.
func (s *String) Len() int {
	if s.isSmall() {
		return char.CountInRange(s.Bytes())
	}
	if !s.hasCachedCodePoints() {
		s.codePoints = uint64(char.CountInRange(s.Bytes()))
	}
	return int(s.codePoints)
}

// CharAt decodes the code point at the given index, counting in code
// points rather than bytes.
func (s *String) CharAt(idx int) (char.Character, error) {
	content := s.Bytes()
	offset, ok := char.Locate(content, idx)
	if !ok {
		return char.Character{}, ErrIndexOutOfRange
	}
	return char.Decode(content[offset:]), nil
}

// hasCachedCodePoints reports whether s.codePoints currently holds a valid
// count. Small mode never caches. A value of 0 is ambiguous by itself - it
// means "known empty" when used<=1 and "dirty, recount on demand" when
// used>1 - which is exactly what makes resetCodePoints's zero-write double
// as the dirty marker without a separate flag.
func (s *String) hasCachedCodePoints() bool {
	if s.isSmall() {
		return false
	}
	return s.codePoints != 0 || s.used <= 1
}

func (s *String) resetCodePoints() {
	if !s.isSmall() {
		s.codePoints = 0
	}
}

func maxU64(vals ...uint64) uint64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func samePointer(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
