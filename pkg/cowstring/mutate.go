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

package cowstring

import (
	"github.com/PreyMa/COWStrings/pkg/char"
	"github.com/PreyMa/COWStrings/pkg/rcbuffer"
)

// contentAndTerminator returns the used bytes (content plus terminator) of
// whichever representation is currently active, for copying into a freshly
// grown buffer.
func (s *String) contentAndTerminator() []byte {
	switch {
	case s.isSmall():
		return s.small[:s.used]
	case s.isLiteral():
		return s.lit[:s.used]
	default:
		return nil
	}
}

// growIntoDynamic transitions a Small or Literal String into Owned Dynamic
// mode with room for at least numBytes, copying the existing content across.
func (s *String) growIntoDynamic(numBytes uint64) error {
	newCap := maxU64(smallCapacity*2, numBytes)
	buf, err := rcbuffer.Allocate(int(newCap))
	if err != nil {
		return err
	}
	copy(buf.Bytes(), s.contentAndTerminator())
	s.lit = nil
	s.buf = buf
	s.setDiscriminator(discDynamic)
	s.resetCodePoints()
	return nil
}

// ensureOwnedCapacity makes s an exclusively-owned Dynamic buffer with room
// for at least numBytes, reallocating only when the current buffer is too
// small or is Shared. A Shared buffer that already has room is still
// reallocated, at the same capacity, purely to stop sharing it - this is
// the copy-on-write trigger.
func (s *String) ensureOwnedCapacity(numBytes uint64) error {
	if !s.isDynamic() {
		return s.growIntoDynamic(numBytes)
	}

	curCap := uint64(s.buf.Capacity())
	hasSpace := curCap >= numBytes
	if !s.isShared() && hasSpace {
		return nil
	}

	newCap := curCap
	if !hasSpace {
		newCap = maxU64(maxU64(curCap*2, numBytes), smallCapacity*2)
	}

	newBuf, err := rcbuffer.Allocate(int(newCap))
	if err != nil {
		return err
	}
	copy(newBuf.Bytes(), s.buf.Bytes()[:s.used])
	s.buf.Release()
	s.buf = newBuf
	return nil
}

// Reserve ensures s can hold at least n bytes (including the terminator)
// without a further reallocation, forcing a private copy if s is currently
// Shared or Literal.
func (s *String) Reserve(n uint64) error {
	if s.ByteCap() < n || s.isShared() || s.isLiteral() {
		return s.ensureOwnedCapacity(n)
	}
	return nil
}

// appendBytes appends bytes (which must not include a terminator) to s,
// growing or privatizing the buffer as needed, and updating the cached
// code point count incrementally when that's cheap enough to be worth it.
//
// If bytes aliases the very buffer being grown - the self-append case,
// s.AppendBytes(s.Bytes()) - it is rebased onto the new buffer after
// ensureOwnedCapacity runs, since the old backing array's contents are
// about to be copied forward but the slice header captured before the call
// still points at the old one.
func (s *String) appendBytes(bytes []byte) error {
	numBytes := uint64(len(bytes))
	used := s.used

	if s.isSmall() && used+numBytes <= smallCapacity {
		copy(s.small[used-1:], bytes)
		s.small[smallCapacity-1] = byte(smallCapacity - used - numBytes)
		s.small[used+numBytes-1] = 0
		s.used = used + numBytes
		return nil
	}

	var oldData []byte
	if s.isDynamic() {
		oldData = s.buf.Bytes()
	}

	if err := s.ensureOwnedCapacity(used + numBytes); err != nil {
		return err
	}

	if samePointer(bytes, oldData) {
		bytes = s.buf.Bytes()[:len(bytes)]
	}

	dst := s.buf.Bytes()
	copy(dst[used-1:], bytes)
	dst[used+numBytes-1] = 0

	hadCache := s.hasCachedCodePoints()
	s.used = used + numBytes

	if hadCache && numBytes <= 64 {
		s.codePoints += uint64(char.CountInRange(bytes))
	} else {
		s.resetCodePoints()
	}
	return nil
}

// Append appends other's content to s.
func (s *String) Append(other *String) error {
	combine := (other.isSmall() && s.hasCachedCodePoints()) ||
		(other.hasCachedCodePoints() && s.isSmall()) ||
		(other.hasCachedCodePoints() && s.hasCachedCodePoints())

	var newCodePoints uint64
	if combine {
		newCodePoints = uint64(s.Len()) + uint64(other.Len())
		s.resetCodePoints()
	}

	if err := s.appendBytes(other.Bytes()); err != nil {
		return err
	}
	if !s.isSmall() {
		s.codePoints = newCodePoints
	}
	return nil
}

// AppendBytes appends raw UTF-8 bytes to s.
func (s *String) AppendBytes(b []byte) error {
	combine := s.hasCachedCodePoints() || (s.isSmall() && s.used+uint64(len(b)) > smallCapacity)

	var newCodePoints uint64
	if combine {
		newCodePoints = uint64(s.Len()) + uint64(char.CountInRange(b))
		s.resetCodePoints()
	}

	if err := s.appendBytes(b); err != nil {
		return err
	}
	if !s.isSmall() {
		s.codePoints = newCodePoints
	}
	return nil
}

// AppendString appends str's bytes to s.
func (s *String) AppendString(str string) error {
	return s.AppendBytes([]byte(str))
}

// AppendChar appends a single decoded Character to s. Unlike the other
// Append variants it never recomputes the count itself and relies on
// appendBytes alone: a valid cached count is incremented by one code point,
// while a dirty one (including right after a Small-to-Dynamic transition)
// stays dirty until the next Len.
func (s *String) AppendChar(c char.Character) error {
	return s.appendBytes(c.Bytes())
}

// SetCharAt replaces the code point at idx with c, shifting the remaining
// bytes left or right if c's encoded width differs from the one it
// replaces.
func (s *String) SetCharAt(idx int, c char.Character) error {
	offset, ok := char.Locate(s.Bytes(), idx)
	if !ok {
		return ErrIndexOutOfRange
	}

	oldWidth := uint64(char.LeadingByteLength(s.Bytes()[offset]))
	newWidth := uint64(c.ByteCount())
	used := s.used
	required := used - oldWidth + newWidth

	if err := s.ensureOwnedCapacity(required); err != nil {
		return err
	}

	buf := s.buf.Bytes()
	pos := uint64(offset)
	tailLen := used - pos - oldWidth

	if newWidth > oldWidth {
		copy(buf[pos+newWidth:pos+newWidth+tailLen], buf[pos+oldWidth:pos+oldWidth+tailLen])
	}
	copy(buf[pos:pos+newWidth], c.Bytes())
	if newWidth < oldWidth {
		copy(buf[pos+newWidth:pos+newWidth+tailLen], buf[pos+oldWidth:pos+oldWidth+tailLen])
	}

	// The code point count is unchanged: one code point was replaced by
	// exactly one other, so any cached Len() value is still valid.
	s.used = required
	return nil
}
