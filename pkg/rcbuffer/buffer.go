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

// Package rcbuffer implements a heap-allocated, fixed-capacity byte buffer
// with an embedded reference counter.
//
// Go has no destructors, so the RAII-based ownership protocol of a C++
// smart pointer (construct owned, clone to share, release on scope exit)
// is reimplemented as an explicit API: Allocate produces an owning Buffer,
// Clone increments the counter to create a second holder, and Release
// decrements it. The garbage collector never changes the counter, so a
// holder that is dropped without Release keeps counting: callers must call
// Release explicitly, typically via defer, for the remaining holder to
// return to Owned.
//
// The counter is atomic so that a Buffer handed across goroutines (as
// happens once a cowstring.String flows through a channel-based pipeline)
// can be read and released safely without the caller serializing access.
package rcbuffer

import (
	"errors"
	"sync/atomic"
)

// ErrOutOfMemory is returned by Allocate when the requested capacity cannot
// be honored. Go's allocator does not itself report OOM conditions to
// callers; this guards the one case under the caller's control, a negative
// or otherwise invalid capacity, and exists so the caller-facing contract
// matches the OutOfMemory error class described for the ref-counted buffer.
var ErrOutOfMemory = errors.New("rcbuffer: allocation failed")

// Buffer is a heap region of fixed capacity with an embedded reference
// counter. It is Owned on creation (counter == 1) and becomes Shared once a
// second holder clones it.
type Buffer struct {
	data  []byte
	count int32
}

// Allocate creates a new Owned Buffer of the given capacity. The buffer's
// contents are zeroed.
func Allocate(capacity int) (*Buffer, error) {
	if capacity < 0 {
		return nil, ErrOutOfMemory
	}
	return &Buffer{
		data:  make([]byte, capacity),
		count: 1,
	}, nil
}

// Clone increments the reference counter and returns the same handle,
// mirroring a C++ copy constructor over a shared pointer. It is the only
// supported way to create a second holder of b; a plain Go assignment of a
// *Buffer does not, and must not be treated as, a tracked clone.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	atomic.AddInt32(&b.count, 1)
	return b
}

// Release decrements the reference counter. It does not free the
// underlying slice; the Go garbage collector reclaims it once no reachable
// Buffer value refers to it. Release is the only way the count goes down,
// so RefCount() reflects exactly the holders that have not yet released.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	atomic.AddInt32(&b.count, -1)
}

// RefCount reports the current number of holders.
func (b *Buffer) RefCount() int32 {
	if b == nil {
		return 0
	}
	return atomic.LoadInt32(&b.count)
}

// TryTakeUnique returns b unchanged if it has exactly one holder, letting
// the caller treat it as exclusively owned. It fails (ok == false) if the
// buffer is shared, in which case the caller must allocate a private copy
// before mutating.
func (b *Buffer) TryTakeUnique() (*Buffer, bool) {
	if b == nil {
		return nil, false
	}
	if atomic.LoadInt32(&b.count) == 1 {
		return b, true
	}
	return nil, false
}

// Bytes returns the full backing slice (len == capacity). Callers track how
// many of those bytes are in use themselves; the buffer has no notion of
// "used" length of its own.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Capacity returns the number of bytes the buffer was allocated with.
func (b *Buffer) Capacity() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}
