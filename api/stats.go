// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Accounting DTOs exposed by the allocator and the storage pool.

package api

// AllocatorStats aggregates buffer allocation counters.
type AllocatorStats struct {
	// LiveBuffers is the number of buffers not yet reclaimed.
	LiveBuffers int64
	// LiveBytes is the byte total currently attributed externally.
	LiveBytes int64
	// TotalBuffers counts every buffer ever created.
	TotalBuffers int64
	// TotalReclaims counts every storage release.
	TotalReclaims int64
}

// StoragePoolStats aggregates block reuse counters for the size-classed
// storage pool.
type StoragePoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	// Classes maps size class (bytes) to blocks ever allocated in it.
	Classes map[int]int64
}
