// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the hioload-arrays library: buffer and view
// interfaces, element type descriptors, the host boundary (memory
// accounting and reclamation), and the shared error taxonomy.
//
// All concrete implementations live under core/, pool/ and adapters/;
// this package holds only interfaces, constants, and small DTOs so that
// embedders can depend on it without pulling in the allocator.
package api
