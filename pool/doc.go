// Package pool
// Author: momentics <momentics@gmail.com>
//
// Size-classed storage pool feeding the buffer allocator. Blocks are
// recycled through per-class free lists; a recycled block is re-zeroed
// before handout so buffer storage is always zero-initialized no matter
// where it came from. Oversized requests bypass the classes and go to
// the heap directly.
package pool
