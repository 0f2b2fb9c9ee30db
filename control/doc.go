// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection for the arrays facade: named probe
// registration, concurrent-safe metric snapshots, and YAML export for
// tooling. Probes are pull-based; nothing in the hot allocation path
// pushes into this package.
package control
