// File: core/view/factory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package view

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-arrays/api"
	"github.com/momentics/hioload-arrays/core/alloc"
	"github.com/momentics/hioload-arrays/core/coerce"
)

// Factory validates view requests and carves views out of buffer
// storage. Validation is front-loaded: every argument is coerced and
// checked before any buffer is allocated or retained, so a failure
// never leaves a partially constructed view or a stray reference.
type Factory struct {
	alloc *alloc.Allocator
	log   *zap.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger injects a structured logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) FactoryOption {
	return func(f *Factory) { f.log = l }
}

// NewFactory constructs a factory allocating fresh buffers from a.
func NewFactory(a *alloc.Allocator, opts ...FactoryOption) *Factory {
	f := &Factory{alloc: a, log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New constructs a view of the given element type from req.
//
// For a Length request the element count is coerced, a fresh buffer of
// length*elementSize bytes is allocated, and the view spans all of it;
// the view inherits the creator reference, so releasing the view
// reclaims the buffer. For a Region request the view retains the
// supplied buffer for its own lifetime and the offset/length algebra of
// the region is validated: the offset must lie within the buffer and be
// element-aligned, an omitted length takes the element-aligned
// remainder, an explicit length must fit between offset and buffer end.
func (f *Factory) New(elem api.ElementType, req Request) (*View, error) {
	if req.buf != nil {
		return f.overBuffer(elem, req)
	}
	return f.overFreshBuffer(elem, req)
}

func (f *Factory) overFreshBuffer(elem api.ElementType, req Request) (*View, error) {
	length, err := coerce.ToLength(req.lengthArg)
	if err != nil {
		return nil, err
	}
	byteLength := length * elem.Size()

	buf, err := f.alloc.CreateBuffer(byteLength)
	if err != nil {
		return nil, err
	}

	f.log.Debug("view over fresh buffer",
		zap.Stringer("elementType", elem),
		zap.Int("length", length),
	)
	// The creator reference moves from the factory to the view.
	return newView(elem, buf, 0, length), nil
}

func (f *Factory) overBuffer(elem api.ElementType, req Request) (*View, error) {
	size := elem.Size()

	bufferByteLength, err := coerce.ToLength(req.buf.ByteLength())
	if err != nil {
		return nil, err
	}

	byteOffset := 0
	if req.hasOffset {
		byteOffset, err = coerce.ToLength(req.offsetArg)
		if err != nil {
			return nil, err
		}
		if byteOffset > bufferByteLength {
			return nil, api.ErrOffsetOutOfBounds
		}
		if byteOffset%size != 0 {
			return nil, api.ErrMisalignedOffset
		}
	}

	var length int
	if !req.hasLength {
		byteLength := bufferByteLength - byteOffset
		length = byteLength / size
		if byteLength%size != 0 {
			return nil, api.ErrMisalignedLength
		}
	} else {
		length, err = coerce.ToLength(req.lengthArg)
		if err != nil {
			return nil, err
		}
		if byteOffset+length*size > bufferByteLength {
			return nil, api.ErrLengthOutOfBounds
		}
	}

	req.buf.Retain()
	f.log.Debug("view over existing buffer",
		zap.Stringer("elementType", elem),
		zap.Int("byteOffset", byteOffset),
		zap.Int("length", length),
	)
	return newView(elem, req.buf, byteOffset, length), nil
}
