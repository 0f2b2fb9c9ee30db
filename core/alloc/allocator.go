// File: core/alloc/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/momentics/hioload-arrays/api"
	"github.com/momentics/hioload-arrays/pool"
)

// Allocator creates and accounts for buffers. All validation happens
// before any storage is acquired, so a failed request allocates nothing
// and moves no counters.
type Allocator struct {
	acct          api.MemoryAccountant
	log           *zap.Logger
	pool          *pool.Manager
	mmapThreshold int

	totalBuffers  atomic.Int64
	totalReclaims atomic.Int64
	liveBuffers   atomic.Int64
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithAccountant injects the external-memory accountant. Defaults to an
// in-process atomic counter.
func WithAccountant(a api.MemoryAccountant) Option {
	return func(al *Allocator) { al.acct = a }
}

// WithLogger injects a structured logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(al *Allocator) { al.log = l }
}

// WithPool routes storage through the size-classed pool.
func WithPool(m *pool.Manager) Option {
	return func(al *Allocator) { al.pool = m }
}

// WithMmapThreshold maps buffers of at least n bytes anonymously instead
// of allocating them on the heap, where the platform supports it.
// n <= 0 disables mapping.
func WithMmapThreshold(n int) Option {
	return func(al *Allocator) { al.mmapThreshold = n }
}

// NewAllocator constructs an allocator with the given options.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{
		acct: &AtomicAccountant{},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CreateBuffer allocates byteLength zero-filled bytes and returns the
// owning handle holding one reference. byteLength outside
// [0, api.MaxBufferBytes] fails with api.ErrSizeExceedsLimit; a failed
// storage acquisition fails with api.ErrOutOfMemory. On success the
// accountant is credited with byteLength external bytes.
func (a *Allocator) CreateBuffer(byteLength int) (*Buffer, error) {
	if byteLength < 0 || byteLength > api.MaxBufferBytes {
		return nil, api.ErrSizeExceedsLimit
	}

	data, free, err := a.acquire(byteLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes", api.ErrOutOfMemory, byteLength)
	}

	a.acct.Adjust(int64(byteLength))
	a.totalBuffers.Add(1)
	a.liveBuffers.Add(1)

	b := &Buffer{
		data:       data,
		byteLength: byteLength,
		owner:      a,
		free:       free,
	}
	b.refs.Store(1)

	a.log.Debug("buffer allocated",
		zap.Int("byteLength", byteLength),
		zap.Int64("externalBytes", a.acct.Total()),
	)
	return b, nil
}

// Accountant returns the accountant this allocator adjusts.
func (a *Allocator) Accountant() api.MemoryAccountant { return a.acct }

// Stats snapshots the allocator counters.
func (a *Allocator) Stats() api.AllocatorStats {
	return api.AllocatorStats{
		LiveBuffers:   a.liveBuffers.Load(),
		LiveBytes:     a.acct.Total(),
		TotalBuffers:  a.totalBuffers.Load(),
		TotalReclaims: a.totalReclaims.Load(),
	}
}

// acquire picks a storage source for n bytes. Every source returns
// zero-filled memory; the returned func releases the region (nil means
// the GC owns it).
func (a *Allocator) acquire(n int) ([]byte, func(), error) {
	if a.mmapThreshold > 0 && n >= a.mmapThreshold && mmapSupported {
		data, free, err := mmapAlloc(n)
		if err == nil {
			return data, free, nil
		}
		a.log.Debug("anonymous mapping failed, falling back to heap",
			zap.Int("bytes", n), zap.Error(err))
	}
	if a.pool != nil {
		block := a.pool.Get(n)
		return block.Data, func() { a.pool.Put(block) }, nil
	}
	data, err := heapAlloc(n)
	if err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}

// reclaimed is the single bookkeeping point for buffer reclamation,
// called exactly once per buffer from Buffer.reclaim.
func (a *Allocator) reclaimed(b *Buffer) {
	a.acct.Adjust(-int64(b.byteLength))
	a.totalReclaims.Add(1)
	a.liveBuffers.Add(-1)
	a.log.Debug("buffer reclaimed",
		zap.Int("byteLength", b.byteLength),
		zap.Int64("externalBytes", a.acct.Total()),
	)
}
