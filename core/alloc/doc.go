// Package alloc
// Author: momentics <momentics@gmail.com>
//
// The buffer allocator: owns raw byte storage, tags buffer handles,
// tracks external-memory accounting, and reclaims storage exactly once
// when the last reference to a buffer is dropped. Storage may come from
// the size-classed pool, an anonymous mapping (large buffers on Linux),
// or the heap; all three hand out zero-filled memory.
package alloc
