// File: control/control.go
// Author: momentics <momentics@gmail.com>
//
// Probe registry and snapshot export for internal inspection.

package control

import (
	"sync"
	"time"

	"github.com/goccy/go-yaml"
)

// Introspector holds registered probe functions and serves snapshots.
type Introspector struct {
	mu       sync.RWMutex
	probes   map[string]func() any
	lastRead time.Time
}

// NewIntrospector creates an empty probe registry.
func NewIntrospector() *Introspector {
	return &Introspector{probes: make(map[string]func() any)}
}

// RegisterProbe inserts a named probe. Re-registering a name replaces
// the previous probe.
func (in *Introspector) RegisterProbe(name string, fn func() any) {
	in.mu.Lock()
	in.probes[name] = fn
	in.mu.Unlock()
}

// Snapshot evaluates all probes and returns their output.
func (in *Introspector) Snapshot() map[string]any {
	in.mu.Lock()
	in.lastRead = time.Now()
	probes := make(map[string]func() any, len(in.probes))
	for k, fn := range in.probes {
		probes[k] = fn
	}
	in.mu.Unlock()

	out := make(map[string]any, len(probes))
	for k, fn := range probes {
		out[k] = fn()
	}
	return out
}

// YAML renders the current snapshot for CLI and debug consumption.
func (in *Introspector) YAML() ([]byte, error) {
	return yaml.Marshal(in.Snapshot())
}

// LastRead reports when a snapshot was last taken.
func (in *Introspector) LastRead() time.Time {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.lastRead
}
