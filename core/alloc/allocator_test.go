package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-arrays/api"
	"github.com/momentics/hioload-arrays/core/alloc"
	"github.com/momentics/hioload-arrays/pool"
)

func TestCreateBuffer(t *testing.T) {
	a := alloc.NewAllocator()
	b, err := a.CreateBuffer(64)
	require.NoError(t, err)
	require.Equal(t, 64, b.ByteLength())
	require.Len(t, b.Bytes(), 64)
	require.EqualValues(t, 64, a.Accountant().Total())

	for _, v := range b.Bytes() {
		require.Zero(t, v)
	}
}

func TestCreateBufferZeroLength(t *testing.T) {
	a := alloc.NewAllocator()
	b, err := a.CreateBuffer(0)
	require.NoError(t, err)
	require.Equal(t, 0, b.ByteLength())
	// A zero-length buffer still owns a valid, zero-sized allocation.
	require.NotNil(t, b.Bytes())
	require.EqualValues(t, 0, a.Accountant().Total())
}

func TestCreateBufferSizeLimit(t *testing.T) {
	a := alloc.NewAllocator()
	for _, n := range []int{-1, api.MaxBufferBytes + 1} {
		_, err := a.CreateBuffer(n)
		require.ErrorIs(t, err, api.ErrSizeExceedsLimit, "size %d", n)
		// A rejected request moves no counters.
		require.EqualValues(t, 0, a.Accountant().Total())
		require.EqualValues(t, 0, a.Stats().TotalBuffers)
	}
}

func TestReleaseReclaimsExactlyOnce(t *testing.T) {
	a := alloc.NewAllocator()
	b, err := a.CreateBuffer(100)
	require.NoError(t, err)
	require.EqualValues(t, 100, a.Accountant().Total())

	b.Release()
	require.EqualValues(t, 0, a.Accountant().Total())
	require.EqualValues(t, 1, a.Stats().TotalReclaims)

	// Further releases are no-ops.
	b.Release()
	b.Release()
	require.EqualValues(t, 0, a.Accountant().Total())
	require.EqualValues(t, 1, a.Stats().TotalReclaims)
}

func TestRetainDelaysReclaim(t *testing.T) {
	a := alloc.NewAllocator()
	b, err := a.CreateBuffer(32)
	require.NoError(t, err)

	b.Retain() // a view would do this
	b.Release()
	require.EqualValues(t, 32, a.Accountant().Total(), "storage freed while a reference remains")
	require.NotNil(t, b.Bytes())

	b.Release()
	require.EqualValues(t, 0, a.Accountant().Total())
}

func TestPooledStorageIsZeroed(t *testing.T) {
	m := pool.NewManager()
	a := alloc.NewAllocator(alloc.WithPool(m))

	b1, err := a.CreateBuffer(64)
	require.NoError(t, err)
	copy(b1.Bytes(), []byte("dirty dirty dirty"))
	b1.Release()

	b2, err := a.CreateBuffer(64)
	require.NoError(t, err)
	for i, v := range b2.Bytes() {
		require.Zerof(t, v, "byte %d not zeroed after pool reuse", i)
	}
}

func TestInjectedAccountant(t *testing.T) {
	acct := &alloc.AtomicAccountant{}
	a := alloc.NewAllocator(alloc.WithAccountant(acct))

	b, err := a.CreateBuffer(1024)
	require.NoError(t, err)
	require.EqualValues(t, 1024, acct.Total())
	b.Release()
	require.EqualValues(t, 0, acct.Total())
}

func TestIsBuffer(t *testing.T) {
	a := alloc.NewAllocator()
	b, err := a.CreateBuffer(8)
	require.NoError(t, err)
	defer b.Release()

	require.True(t, alloc.IsBuffer(b))
	require.False(t, alloc.IsBuffer(8))
	require.False(t, alloc.IsBuffer(nil))
	require.False(t, alloc.IsBuffer([]byte{1}))
}

func TestStats(t *testing.T) {
	a := alloc.NewAllocator()
	b1, _ := a.CreateBuffer(10)
	b2, _ := a.CreateBuffer(20)

	st := a.Stats()
	require.EqualValues(t, 2, st.LiveBuffers)
	require.EqualValues(t, 30, st.LiveBytes)

	b1.Release()
	b2.Release()
	st = a.Stats()
	require.EqualValues(t, 0, st.LiveBuffers)
	require.EqualValues(t, 0, st.LiveBytes)
	require.EqualValues(t, 2, st.TotalBuffers)
	require.EqualValues(t, 2, st.TotalReclaims)
}

func TestMmapStorage(t *testing.T) {
	a := alloc.NewAllocator(alloc.WithMmapThreshold(4096))
	b, err := a.CreateBuffer(1 << 20)
	require.NoError(t, err)
	require.Len(t, b.Bytes(), 1<<20)
	for _, v := range b.Bytes()[:4096] {
		require.Zero(t, v)
	}
	b.Bytes()[0] = 0xaa
	require.Equal(t, byte(0xaa), b.Bytes()[0])
	b.Release()
	require.EqualValues(t, 0, a.Accountant().Total())
}
