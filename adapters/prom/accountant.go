// File: adapters/prom/accountant.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package prom exposes the allocator's external-memory accounting as
// Prometheus metrics: a gauge for the live byte total and counters for
// cumulative allocated and reclaimed bytes.
package prom

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-arrays/api"
)

// Accountant implements api.MemoryAccountant on Prometheus collectors.
type Accountant struct {
	total atomic.Int64

	liveBytes      prometheus.Gauge
	allocatedBytes prometheus.Counter
	reclaimedBytes prometheus.Counter
}

var _ api.MemoryAccountant = (*Accountant)(nil)

// NewAccountant builds the collectors and registers them on r.
func NewAccountant(r prometheus.Registerer, namespace string) (*Accountant, error) {
	a := &Accountant{
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "external_bytes",
			Help:      "bytes of buffer storage currently allocated outside the managed heap",
		}),
		allocatedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocated_bytes_total",
			Help:      "cumulative bytes of buffer storage allocated",
		}),
		reclaimedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reclaimed_bytes_total",
			Help:      "cumulative bytes of buffer storage reclaimed",
		}),
	}
	for _, c := range []prometheus.Collector{a.liveBytes, a.allocatedBytes, a.reclaimedBytes} {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Adjust moves the live gauge and the matching cumulative counter.
func (a *Accountant) Adjust(delta int64) {
	a.total.Add(delta)
	a.liveBytes.Add(float64(delta))
	if delta >= 0 {
		a.allocatedBytes.Add(float64(delta))
	} else {
		a.reclaimedBytes.Add(float64(-delta))
	}
}

// Total returns the current externally allocated byte count.
func (a *Accountant) Total() int64 { return a.total.Load() }
