// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-arrays/api"
)

// Predefined (power-of-two) storage size classes (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	256,
	1024,
	4 * 1024,
	16 * 1024,
	64 * 1024,
	256 * 1024,
	1024 * 1024,
	4 * 1024 * 1024,
}

// freeListCapacity bounds how many idle blocks a class retains.
const freeListCapacity = 256

// sizeClassUpperBound returns the smallest class >= size, or -1 when
// the request is larger than every class.
func sizeClassUpperBound(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return -1
}

// Block is one reusable storage block. Data is sized to the request;
// its capacity is the block's size class.
type Block struct {
	Data  []byte
	class int
}

// Manager owns all per-class free lists.
type Manager struct {
	mu      sync.Mutex
	classes map[int]*classPool

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
}

// classPool recycles blocks of a single size class through a bounded
// channel free list.
type classPool struct {
	class     int
	free      chan *Block
	allocated atomic.Int64
}

// NewManager initializes an empty pool manager.
func NewManager() *Manager {
	return &Manager{classes: make(map[int]*classPool)}
}

// Get returns a zero-filled block of at least size bytes. Requests
// above the largest class allocate unpooled; their blocks are dropped
// on Put.
func (m *Manager) Get(size int) *Block {
	m.totalAlloc.Add(1)
	m.inUse.Add(1)

	clz := sizeClassUpperBound(size)
	if clz < 0 {
		return &Block{Data: make([]byte, size), class: -1}
	}

	cp := m.getOrCreateClass(clz)
	select {
	case b := <-cp.free:
		b.Data = b.Data[:size]
		zero(b.Data)
		return b
	default:
	}
	cp.allocated.Add(1)
	return &Block{Data: make([]byte, size, clz), class: clz}
}

// Put recycles b. The block must not be used afterwards.
func (m *Manager) Put(b *Block) {
	if b == nil {
		return
	}
	m.totalFree.Add(1)
	m.inUse.Add(-1)
	if b.class < 0 {
		return
	}

	cp := m.getOrCreateClass(b.class)
	select {
	case cp.free <- b:
	default:
		// Free list full; let the GC take it.
	}
}

// Stats exposes allocation counters for introspection.
func (m *Manager) Stats() api.StoragePoolStats {
	m.mu.Lock()
	classes := make(map[int]int64, len(m.classes))
	for clz, cp := range m.classes {
		classes[clz] = cp.allocated.Load()
	}
	m.mu.Unlock()

	return api.StoragePoolStats{
		TotalAlloc: m.totalAlloc.Load(),
		TotalFree:  m.totalFree.Load(),
		InUse:      m.inUse.Load(),
		Classes:    classes,
	}
}

// getOrCreateClass returns the pool for a class, lazily allocating on
// first use.
func (m *Manager) getOrCreateClass(class int) *classPool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cp, ok := m.classes[class]; ok {
		return cp
	}
	cp := &classPool{class: class, free: make(chan *Block, freeListCapacity)}
	m.classes[class] = cp
	return cp
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
