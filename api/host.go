// File: api/host.go
// Author: momentics <momentics@gmail.com>
//
// The host boundary. An embedding runtime supplies these two
// capabilities: an external-memory accounting counter it consults when
// scheduling its own collection work, and (optionally) a reclamation
// host that releases handles once they become unreachable.

package api

// MemoryAccountant tracks bytes of storage owned outside the host's
// managed heap. The allocator adjusts it by +byteLength on creation and
// by -byteLength on reclamation, exactly once each way per buffer.
type MemoryAccountant interface {
	// Adjust moves the counter by delta bytes (positive or negative).
	Adjust(delta int64)

	// Total returns the current externally allocated byte count.
	Total() int64
}

// Host is the reclamation boundary: an attached handle has Release
// invoked on it exactly once, at an unspecified later time, when the
// host decides it is unreachable. Detach cancels
// a pending attachment; it is called on explicit release so the host
// never fires twice for the same handle.
type Host interface {
	Attach(h Releaser)
	Detach(h Releaser)
}

// Numeric is implemented by externally supplied values that carry their
// own numeric conversion, mirroring a script object's valueOf. A failed
// conversion aborts coercion and the error passes through to the caller
// unreinterpreted.
type Numeric interface {
	ToNumber() (float64, error)
}
