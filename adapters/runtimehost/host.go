// File: adapters/runtimehost/host.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package runtimehost implements host-scheduled reclamation on top of
// the Go runtime: an attached handle gets a finalizer that releases it
// once the collector finds it unreachable.
// Timing is the runtime's business; the reclamation action itself runs
// synchronously inside the finalizer goroutine, and Release's
// exactly-once guarantee makes an explicit release racing a finalizer
// harmless. Embedders that release deterministically do not need this
// adapter at all.
package runtimehost

import (
	"runtime"

	"github.com/momentics/hioload-arrays/api"
)

// Host implements api.Host with runtime finalizers.
type Host struct{}

var _ api.Host = (*Host)(nil)

// New returns the finalizer-backed host.
func New() *Host { return &Host{} }

// Attach arranges for h.Release to run after h becomes unreachable.
func (*Host) Attach(h api.Releaser) {
	runtime.SetFinalizer(h, func(h api.Releaser) { h.Release() })
}

// Detach cancels a pending finalizer; used on explicit release so the
// handle can be collected without a second pass.
func (*Host) Detach(h api.Releaser) {
	runtime.SetFinalizer(h, nil)
}
