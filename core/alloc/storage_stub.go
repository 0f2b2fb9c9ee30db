// File: core/alloc/storage_stub.go
// Author: momentics <momentics@gmail.com>
//
// Non-Linux platforms allocate everything on the heap.

//go:build !linux

package alloc

import "errors"

const mmapSupported = false

func mmapAlloc(int) ([]byte, func(), error) {
	return nil, nil, errors.New("anonymous mapping not supported on this platform")
}
