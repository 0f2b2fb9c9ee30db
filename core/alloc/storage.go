// File: core/alloc/storage.go
// Author: momentics <momentics@gmail.com>
//
// Heap storage source. Go zero-fills fresh allocations, so no explicit
// memset is needed here; the pool re-zeroes recycled blocks itself.

package alloc

import "github.com/momentics/hioload-arrays/api"

// heapAlloc allocates n zero bytes on the heap. A zero-length request
// still yields a valid non-nil slice. An allocation the runtime cannot
// satisfy surfaces as api.ErrOutOfMemory instead of a panic.
func heapAlloc(n int) (data []byte, err error) {
	defer func() {
		if recover() != nil {
			data, err = nil, api.ErrOutOfMemory
		}
	}()
	return make([]byte, n), nil
}
