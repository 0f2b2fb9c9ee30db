// Package fake
// Author: momentics <momentics@gmail.com>
//
// Deterministic host and accountant doubles for testing. The fake host
// replaces the GC-scheduled reachability pass with an explicit
// MarkUnreachable/Collect pair so tests control exactly when
// reclamation callbacks fire, and can assert they fire exactly once.
package fake
