// File: core/alloc/storage_linux.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous-mapping storage source for large buffers on Linux. Mapped
// pages are zero-filled by the kernel and returned to it on reclaim,
// keeping multi-megabyte buffers out of the Go heap.

package alloc

import "golang.org/x/sys/unix"

const mmapSupported = true

func mmapAlloc(n int) ([]byte, func(), error) {
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, nil, err
	}
	return data, func() { _ = unix.Munmap(data) }, nil
}
