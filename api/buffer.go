// File: api/buffer.go
// Author: momentics <momentics@gmail.com>
//
// Buffer and view contracts. A Buffer exclusively owns a fixed-length,
// zero-initialized byte region; a View is a typed, non-owning window
// into one. Many views may alias the same buffer, overlapping freely.
// All access is zero-copy.

package api

// Buffer describes an owned, reference-counted byte region of immutable
// length. The creator holds the initial reference; every view over the
// buffer holds one more. Storage is released exactly once, when the
// last reference is dropped.
type Buffer interface {
	// Bytes returns the backing storage. The slice aliases the owned
	// region; it is valid until the last reference is released.
	Bytes() []byte

	// ByteLength returns the fixed byte size chosen at creation.
	ByteLength() int

	// Retain adds a reference. Views call this on construction.
	Retain()

	// Release drops a reference. Dropping the last reference frees the
	// storage and reverses its memory-accounting contribution. Release
	// after the count reaches zero is a no-op.
	Release()
}

// View describes a typed window over a contiguous sub-region of a
// Buffer. A view never owns memory; it keeps its buffer alive for its
// own lifetime and releases that reference in Release.
type View interface {
	ElementType() ElementType

	// BytesPerElement returns the element width (1, 2, 4 or 8).
	BytesPerElement() int

	// ByteOffset is the window start within the buffer, always a
	// multiple of BytesPerElement.
	ByteOffset() int

	// ByteLength is the window extent in bytes, always a multiple of
	// BytesPerElement.
	ByteLength() int

	// Len is ByteLength / BytesPerElement.
	Len() int

	// Buffer returns the aliased buffer without transferring ownership.
	Buffer() Buffer

	// Index reads element i as a float64; every supported element value
	// is exactly representable. SetIndex stores val with the element
	// type's store conversion (truncate-and-wrap for integers). Index
	// range [0, Len) is the caller's responsibility; out-of-range
	// access panics like any slice access.
	Index(i int) float64
	SetIndex(i int, val float64)

	// Release drops the view's keep-alive reference on its buffer.
	// Releasing a view never frees the buffer by itself.
	Release()
}

// Releaser is the minimal handle contract reclamation hosts operate on.
// Both Buffer and View satisfy it.
type Releaser interface {
	Release()
}
