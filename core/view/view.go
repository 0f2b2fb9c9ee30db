// File: core/view/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The View handle and its element accessors. A view never owns memory:
// it aliases a window of its buffer's storage and holds one keep-alive
// reference on the buffer, dropped in Release.

package view

import (
	"sync/atomic"

	"github.com/momentics/hioload-arrays/api"
	"github.com/momentics/hioload-arrays/core/alloc"
)

// View is a typed window over a contiguous region of a buffer.
// Construction guarantees byteOffset and byteLength are multiples of
// the element size and the window lies inside the buffer. Index range
// [0, Len) is the caller's responsibility after construction; an
// out-of-range index panics like any slice access.
type View struct {
	elem       api.ElementType
	data       []byte
	buf        *alloc.Buffer
	byteOffset int
	length     int
	released   atomic.Bool
}

var _ api.View = (*View)(nil)

func newView(elem api.ElementType, buf *alloc.Buffer, byteOffset, length int) *View {
	byteLength := length * elem.Size()
	return &View{
		elem:       elem,
		data:       buf.Bytes()[byteOffset : byteOffset+byteLength : byteOffset+byteLength],
		buf:        buf,
		byteOffset: byteOffset,
		length:     length,
	}
}

// ElementType returns the numeric interpretation of the window.
func (v *View) ElementType() api.ElementType { return v.elem }

// BytesPerElement returns the element width in bytes.
func (v *View) BytesPerElement() int { return v.elem.Size() }

// ByteOffset returns the window start within the buffer.
func (v *View) ByteOffset() int { return v.byteOffset }

// ByteLength returns the window extent in bytes.
func (v *View) ByteLength() int { return v.length * v.elem.Size() }

// Len returns the element count.
func (v *View) Len() int { return v.length }

// Buffer returns the aliased buffer. The buffer stays alive at least as
// long as the view; callers wanting to outlive the view must Retain.
func (v *View) Buffer() api.Buffer { return v.buf }

// Bytes returns the aliased byte window.
func (v *View) Bytes() []byte { return v.data }

// Release drops the view's keep-alive reference on its buffer. Only the
// first call has effect. Releasing a view never frees a buffer that is
// still referenced elsewhere.
func (v *View) Release() {
	if v.released.CompareAndSwap(false, true) {
		v.buf.Release()
	}
}
