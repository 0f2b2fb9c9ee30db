// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Shared error taxonomy. Every construction failure is synchronous and
// recoverable: it aborts only the current request, never the process,
// and never leaves a partially constructed buffer or view behind.

package api

import "errors"

var (
	// ErrMissingArgument reports a constructor invoked with no arguments.
	ErrMissingArgument = errors.New("constructor requires at least one argument")

	// ErrInvalidLength reports a length or offset that coerced to a
	// negative value.
	ErrInvalidLength = errors.New("length must not be negative")

	// ErrLengthTooLarge reports a coerced length above MaxLength.
	ErrLengthTooLarge = errors.New("length exceeds maximum length")

	// ErrSizeExceedsLimit reports a buffer byte size above MaxBufferBytes.
	ErrSizeExceedsLimit = errors.New("buffer exceeds maximum size (2G)")

	// ErrOutOfMemory reports a failed storage allocation.
	ErrOutOfMemory = errors.New("memory allocation failed")

	// ErrOffsetOutOfBounds reports a view offset past the end of its buffer.
	ErrOffsetOutOfBounds = errors.New("byteOffset out of bounds")

	// ErrLengthOutOfBounds reports a view region extending past its buffer.
	ErrLengthOutOfBounds = errors.New("length out of bounds")

	// ErrMisalignedOffset reports a view offset that is not a multiple
	// of the element size.
	ErrMisalignedOffset = errors.New("byteOffset must be multiple of element size")

	// ErrMisalignedLength reports a byte extent that is not a multiple
	// of the element size.
	ErrMisalignedLength = errors.New("byte length must be multiple of element size")
)
