// File: core/alloc/accounting.go
// Author: momentics <momentics@gmail.com>
//
// Default in-process external-memory accountant. Embedders wanting the
// counter surfaced elsewhere (a host runtime, Prometheus) inject their
// own api.MemoryAccountant instead.

package alloc

import (
	"sync/atomic"

	"github.com/momentics/hioload-arrays/api"
)

// AtomicAccountant is a process-local atomic byte counter.
type AtomicAccountant struct {
	total atomic.Int64
}

var _ api.MemoryAccountant = (*AtomicAccountant)(nil)

// Adjust moves the counter by delta bytes.
func (a *AtomicAccountant) Adjust(delta int64) { a.total.Add(delta) }

// Total returns the current externally allocated byte count.
func (a *AtomicAccountant) Total() int64 { return a.total.Load() }
