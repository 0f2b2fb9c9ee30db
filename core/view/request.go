// File: core/view/request.go
// Author: momentics <momentics@gmail.com>
//
// The tagged construction request. Dynamic argument sniffing lives in
// the arrays facade; by the time a Request reaches the factory the call
// shape is already decided, only the numeric arguments remain raw so
// coercion failures surface in the documented order.

package view

import "github.com/momentics/hioload-arrays/core/alloc"

// Request describes one view construction. Two shapes exist:
//
//   - Length(n): allocate a fresh buffer of n elements and view all of it.
//   - Region(buf): view an existing buffer, optionally narrowed with
//     WithOffset and WithLength.
//
// Offset and length values stay untyped; the factory coerces them in
// argument order, so a coercion failure on the offset aborts before the
// length is even looked at.
type Request struct {
	buf       *alloc.Buffer
	lengthArg any
	offsetArg any
	hasOffset bool
	hasLength bool
}

// Length requests a view over a freshly allocated buffer of n elements.
func Length(n any) Request {
	return Request{lengthArg: n, hasLength: true}
}

// Region requests a view over all of buf.
func Region(buf *alloc.Buffer) Request {
	return Request{buf: buf}
}

// WithOffset narrows a region request to start at the given byte offset.
func (r Request) WithOffset(v any) Request {
	r.offsetArg = v
	r.hasOffset = true
	return r
}

// WithLength limits a region request to the given element count.
func (r Request) WithLength(v any) Request {
	r.lengthArg = v
	r.hasLength = true
	return r
}
