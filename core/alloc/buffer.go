// File: core/alloc/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The Buffer handle. One buffer exclusively owns one storage region;
// references are counted, and the drop-to-zero transition is the single
// point where storage is released and accounting reversed.

package alloc

import (
	"sync/atomic"

	"github.com/momentics/hioload-arrays/api"
)

// Buffer is an owned, zero-initialized byte region of immutable length.
// The creator holds the initial reference; views retain one more each.
type Buffer struct {
	data       []byte
	byteLength int
	refs       atomic.Int32
	reclaimed  atomic.Bool
	owner      *Allocator
	free       func()
}

var _ api.Buffer = (*Buffer)(nil)

// Bytes returns the backing storage. Valid until the last reference is
// released.
func (b *Buffer) Bytes() []byte { return b.data }

// ByteLength returns the byte size fixed at creation.
func (b *Buffer) ByteLength() int { return b.byteLength }

// Retain adds a reference.
func (b *Buffer) Retain() { b.refs.Add(1) }

// Release drops one reference. The last drop reclaims the storage;
// further calls are no-ops.
func (b *Buffer) Release() {
	for {
		n := b.refs.Load()
		if n <= 0 {
			return
		}
		if b.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				b.reclaim()
			}
			return
		}
	}
}

// Refs reports the current reference count. Introspection only.
func (b *Buffer) Refs() int32 { return b.refs.Load() }

// reclaim releases the storage and reverses the accounting
// contribution, at most once per buffer.
func (b *Buffer) reclaim() {
	if !b.reclaimed.CompareAndSwap(false, true) {
		return
	}
	b.owner.reclaimed(b)
	if b.free != nil {
		b.free()
	}
	b.data = nil
}

// IsBuffer reports whether v carries the buffer marker, distinguishing
// "view over existing buffer" from "view over bare length" in dynamic
// argument lists. Any api.Buffer qualifies.
func IsBuffer(v any) bool {
	_, ok := v.(api.Buffer)
	return ok
}
