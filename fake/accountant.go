// File: fake/accountant.go
// Author: momentics <momentics@gmail.com>
//
// Recording accountant: an api.MemoryAccountant that keeps the full
// adjustment history so tests can assert exact increment/decrement
// pairing.

package fake

import (
	"sync"

	"github.com/momentics/hioload-arrays/api"
)

// Accountant records every Adjust call.
type Accountant struct {
	mu      sync.Mutex
	total   int64
	history []int64
}

var _ api.MemoryAccountant = (*Accountant)(nil)

// Adjust moves the counter and appends delta to the history.
func (a *Accountant) Adjust(delta int64) {
	a.mu.Lock()
	a.total += delta
	a.history = append(a.history, delta)
	a.mu.Unlock()
}

// Total returns the current counter value.
func (a *Accountant) Total() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// History returns a copy of all recorded deltas in order.
func (a *Accountant) History() []int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int64, len(a.history))
	copy(out, a.history)
	return out
}
