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

package rcbuffer

import "testing"

func TestAllocateOwned(t *testing.T) {
	b, err := Allocate(16)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if b.RefCount() != 1 {
		t.Fatalf("RefCount() = %d, want 1", b.RefCount())
	}
	if b.Capacity() != 16 {
		t.Fatalf("Capacity() = %d, want 16", b.Capacity())
	}
}

func TestAllocateNegativeCapacity(t *testing.T) {
	if _, err := Allocate(-1); err != ErrOutOfMemory {
		t.Fatalf("Allocate(-1) error = %v, want ErrOutOfMemory", err)
	}
}

func TestCloneIncrementsAndShares(t *testing.T) {
	b, _ := Allocate(8)
	clone := b.Clone()
	if clone != b {
		t.Fatalf("Clone() returned a different handle; want the same buffer")
	}
	if got := b.RefCount(); got != 2 {
		t.Fatalf("RefCount() after Clone = %d, want 2", got)
	}

	b.Release()
	if got := b.RefCount(); got != 1 {
		t.Fatalf("RefCount() after one Release = %d, want 1", got)
	}
}

func TestTryTakeUnique(t *testing.T) {
	b, _ := Allocate(4)
	if _, ok := b.TryTakeUnique(); !ok {
		t.Fatalf("TryTakeUnique() on a fresh buffer should succeed")
	}

	b.Clone()
	if _, ok := b.TryTakeUnique(); ok {
		t.Fatalf("TryTakeUnique() on a shared buffer should fail")
	}

	b.Release()
	if _, ok := b.TryTakeUnique(); !ok {
		t.Fatalf("TryTakeUnique() after releasing the clone should succeed again")
	}
}

func TestBytesLengthMatchesCapacity(t *testing.T) {
	b, _ := Allocate(10)
	if len(b.Bytes()) != 10 {
		t.Fatalf("len(Bytes()) = %d, want 10", len(b.Bytes()))
	}
}

func TestNilBufferIsSafe(t *testing.T) {
	var b *Buffer
	if b.RefCount() != 0 {
		t.Fatalf("nil Buffer RefCount() = %d, want 0", b.RefCount())
	}
	if b.Capacity() != 0 {
		t.Fatalf("nil Buffer Capacity() = %d, want 0", b.Capacity())
	}
	if b.Bytes() != nil {
		t.Fatalf("nil Buffer Bytes() should be nil")
	}
	b.Release() // must not panic
	if b.Clone() != nil {
		t.Fatalf("nil Buffer Clone() should return nil")
	}
}
