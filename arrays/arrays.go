// File: arrays/arrays.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Arrays struct, which aggregates the allocator,
// the view factory, and the introspection registry behind a single
// facade, configured once at construction. The per-type constructors
// mirror the host-visible surface: a raw buffer request goes straight
// to the allocator; a typed-view request is shape-sniffed here and
// dispatched to the factory as a tagged request.

package arrays

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-arrays/api"
	"github.com/momentics/hioload-arrays/control"
	"github.com/momentics/hioload-arrays/core/alloc"
	"github.com/momentics/hioload-arrays/core/coerce"
	"github.com/momentics/hioload-arrays/core/view"
	"github.com/momentics/hioload-arrays/internal/logging"
	"github.com/momentics/hioload-arrays/pool"
)

// Arrays is the main facade type.
type Arrays struct {
	alloc        *alloc.Allocator
	factory      *view.Factory
	pool         *pool.Manager
	host         api.Host
	control      *control.Introspector
	log          *zap.Logger
	acctOverride api.MemoryAccountant
}

// Option configures pieces Config cannot carry (injected collaborators).
type Option func(*Arrays)

// WithHost attaches every created handle to a reclamation host, so
// handles dropped without an explicit Release are still reclaimed.
func WithHost(h api.Host) Option {
	return func(x *Arrays) { x.host = h }
}

// WithAccountant injects the external-memory accountant used by the
// allocator (e.g. the Prometheus adapter).
func WithAccountant(acct api.MemoryAccountant) Option {
	return func(x *Arrays) { x.acctOverride = acct }
}

// WithLogger overrides the logger chosen by Config.Debug.
func WithLogger(l *zap.Logger) Option {
	return func(x *Arrays) { x.log = l }
}

// New constructs the facade from cfg (nil means DefaultConfig).
func New(cfg *Config, opts ...Option) (*Arrays, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	x := &Arrays{}
	for _, opt := range opts {
		opt(x)
	}
	if x.log == nil {
		x.log = logging.New(cfg.Debug)
	}

	allocOpts := []alloc.Option{alloc.WithLogger(x.log)}
	if x.acctOverride != nil {
		allocOpts = append(allocOpts, alloc.WithAccountant(x.acctOverride))
	}
	if cfg.UsePool {
		x.pool = pool.NewManager()
		allocOpts = append(allocOpts, alloc.WithPool(x.pool))
	}
	if cfg.MmapThresholdBytes > 0 {
		allocOpts = append(allocOpts, alloc.WithMmapThreshold(cfg.MmapThresholdBytes))
	}
	x.alloc = alloc.NewAllocator(allocOpts...)
	x.factory = view.NewFactory(x.alloc, view.WithLogger(x.log))

	x.control = control.NewIntrospector()
	if cfg.EnableMetrics {
		x.registerProbes()
	}
	return x, nil
}

// ArrayBuffer constructs a raw buffer of the coerced byte length.
func (x *Arrays) ArrayBuffer(args ...any) (api.Buffer, error) {
	if len(args) == 0 {
		return nil, api.ErrMissingArgument
	}
	byteLength, err := coerce.ToLength(args[0])
	if err != nil {
		return nil, err
	}
	b, err := x.alloc.CreateBuffer(byteLength)
	if err != nil {
		return nil, err
	}
	x.attach(b)
	return b, nil
}

// Int8Array constructs a signed 8-bit view.
func (x *Arrays) Int8Array(args ...any) (api.View, error) {
	return x.newView(api.Int8, args)
}

// Uint8Array constructs an unsigned 8-bit view.
func (x *Arrays) Uint8Array(args ...any) (api.View, error) {
	return x.newView(api.Uint8, args)
}

// Int16Array constructs a signed 16-bit view.
func (x *Arrays) Int16Array(args ...any) (api.View, error) {
	return x.newView(api.Int16, args)
}

// Uint16Array constructs an unsigned 16-bit view.
func (x *Arrays) Uint16Array(args ...any) (api.View, error) {
	return x.newView(api.Uint16, args)
}

// Int32Array constructs a signed 32-bit view.
func (x *Arrays) Int32Array(args ...any) (api.View, error) {
	return x.newView(api.Int32, args)
}

// Uint32Array constructs an unsigned 32-bit view.
func (x *Arrays) Uint32Array(args ...any) (api.View, error) {
	return x.newView(api.Uint32, args)
}

// Float32Array constructs an IEEE-754 single-precision view.
func (x *Arrays) Float32Array(args ...any) (api.View, error) {
	return x.newView(api.Float32, args)
}

// Float64Array constructs an IEEE-754 double-precision view.
func (x *Arrays) Float64Array(args ...any) (api.View, error) {
	return x.newView(api.Float64, args)
}

// newView disambiguates the two supported call shapes:
//
//	TypedArray(length)
//	TypedArray(buffer[, byteOffset[, length]])
//
// A nil optional argument counts as omitted.
func (x *Arrays) newView(elem api.ElementType, args []any) (api.View, error) {
	if len(args) == 0 {
		return nil, api.ErrMissingArgument
	}

	var req view.Request
	if buf, ok := args[0].(*alloc.Buffer); ok {
		req = view.Region(buf)
		if len(args) >= 2 && args[1] != nil {
			req = req.WithOffset(args[1])
		}
		if len(args) >= 3 && args[2] != nil {
			req = req.WithLength(args[2])
		}
	} else {
		req = view.Length(args[0])
	}

	v, err := x.factory.New(elem, req)
	if err != nil {
		return nil, err
	}
	x.attach(v)
	return v, nil
}

// Allocator exposes the underlying allocator for embedders that create
// buffers outside the dynamic surface.
func (x *Arrays) Allocator() *alloc.Allocator { return x.alloc }

// Factory exposes the view factory for statically typed construction.
func (x *Arrays) Factory() *view.Factory { return x.factory }

// Control returns the introspection registry.
func (x *Arrays) Control() *control.Introspector { return x.control }

// ExternalBytes reports the current externally accounted byte total.
func (x *Arrays) ExternalBytes() int64 { return x.alloc.Accountant().Total() }

func (x *Arrays) attach(h api.Releaser) {
	if x.host != nil {
		x.host.Attach(h)
	}
}

func (x *Arrays) registerProbes() {
	x.control.RegisterProbe("allocator", func() any { return x.alloc.Stats() })
	x.control.RegisterProbe("external_bytes", func() any { return x.alloc.Accountant().Total() })
	if x.pool != nil {
		x.control.RegisterProbe("storage_pool", func() any { return x.pool.Stats() })
	}
}
