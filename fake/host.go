// File: fake/host.go
// Author: momentics <momentics@gmail.com>
//
// Fake reclamation host. Attached handles sit idle until a test marks
// them unreachable; Collect drains the pending FIFO in mark order,
// releasing each handle once. Double marks and marks on detached
// handles are no-ops, matching the contract that the host never fires
// twice for the same handle.

package fake

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-arrays/api"
)

// Host is a deterministic implementation of api.Host.
type Host struct {
	mu       sync.Mutex
	attached map[api.Releaser]bool
	pending  *queue.Queue
}

var _ api.Host = (*Host)(nil)

// NewHost creates an empty fake host.
func NewHost() *Host {
	return &Host{
		attached: make(map[api.Releaser]bool),
		pending:  queue.New(),
	}
}

// Attach registers h for reclamation-on-unreachability.
func (f *Host) Attach(h api.Releaser) {
	f.mu.Lock()
	f.attached[h] = true
	f.mu.Unlock()
}

// Detach cancels a pending attachment, as an explicit release would.
func (f *Host) Detach(h api.Releaser) {
	f.mu.Lock()
	delete(f.attached, h)
	f.mu.Unlock()
}

// MarkUnreachable simulates the host's reachability analysis deciding h
// is garbage. The handle moves to the pending FIFO at most once.
func (f *Host) MarkUnreachable(h api.Releaser) {
	f.mu.Lock()
	if f.attached[h] {
		delete(f.attached, h)
		f.pending.Add(h)
	}
	f.mu.Unlock()
}

// Collect runs the reclamation pass: every pending handle has Release
// invoked exactly once, in mark order. Returns the number of handles
// collected.
func (f *Host) Collect() int {
	f.mu.Lock()
	handles := make([]api.Releaser, 0, f.pending.Length())
	for f.pending.Length() > 0 {
		handles = append(handles, f.pending.Remove().(api.Releaser))
	}
	f.mu.Unlock()

	for _, h := range handles {
		h.Release()
	}
	return len(handles)
}

// Attached reports how many handles are registered and not yet marked.
func (f *Host) Attached() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.attached)
}
