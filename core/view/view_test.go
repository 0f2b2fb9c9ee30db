package view_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-arrays/api"
	"github.com/momentics/hioload-arrays/core/view"
)

func TestRoundTripIntegers(t *testing.T) {
	_, f := newFactory(t)

	t.Run("int8", func(t *testing.T) {
		v, err := f.New(api.Int8, view.Length(4))
		require.NoError(t, err)
		for i, want := range []int8{math.MinInt8, -1, 0, math.MaxInt8} {
			view.SetAt(v, i, want)
			require.Equal(t, want, view.At[int8](v, i))
		}
	})
	t.Run("uint8", func(t *testing.T) {
		v, err := f.New(api.Uint8, view.Length(3))
		require.NoError(t, err)
		for i, want := range []uint8{0, 1, math.MaxUint8} {
			view.SetAt(v, i, want)
			require.Equal(t, want, view.At[uint8](v, i))
		}
	})
	t.Run("int16", func(t *testing.T) {
		v, err := f.New(api.Int16, view.Length(4))
		require.NoError(t, err)
		for i, want := range []int16{math.MinInt16, -1, 0, math.MaxInt16} {
			view.SetAt(v, i, want)
			require.Equal(t, want, view.At[int16](v, i))
		}
	})
	t.Run("uint16", func(t *testing.T) {
		v, err := f.New(api.Uint16, view.Length(2))
		require.NoError(t, err)
		for i, want := range []uint16{0, math.MaxUint16} {
			view.SetAt(v, i, want)
			require.Equal(t, want, view.At[uint16](v, i))
		}
	})
	t.Run("int32", func(t *testing.T) {
		v, err := f.New(api.Int32, view.Length(4))
		require.NoError(t, err)
		for i, want := range []int32{math.MinInt32, -1, 0, math.MaxInt32} {
			view.SetAt(v, i, want)
			require.Equal(t, want, view.At[int32](v, i))
		}
	})
	t.Run("uint32", func(t *testing.T) {
		v, err := f.New(api.Uint32, view.Length(2))
		require.NoError(t, err)
		for i, want := range []uint32{0, math.MaxUint32} {
			view.SetAt(v, i, want)
			require.Equal(t, want, view.At[uint32](v, i))
		}
	})
}

func TestRoundTripFloats(t *testing.T) {
	_, f := newFactory(t)

	v32, err := f.New(api.Float32, view.Length(6))
	require.NoError(t, err)
	for i, want := range []float32{0, -0, 1.5, float32(math.Inf(1)), float32(math.Inf(-1)), math.MaxFloat32} {
		view.SetAt(v32, i, want)
		require.Equal(t, want, view.At[float32](v32, i))
	}

	v64, err := f.New(api.Float64, view.Length(6))
	require.NoError(t, err)
	for i, want := range []float64{0, math.Copysign(0, -1), 1.5, math.Inf(1), math.Inf(-1), math.SmallestNonzeroFloat64} {
		view.SetAt(v64, i, want)
		require.Equal(t, math.Float64bits(want), math.Float64bits(view.At[float64](v64, i)))
	}
}

func TestNaNBitPatternPreserved(t *testing.T) {
	_, f := newFactory(t)
	v, err := f.New(api.Float64, view.Length(1))
	require.NoError(t, err)

	nan := math.Float64frombits(0x7ff8_dead_beef_0001)
	view.SetAt(v, 0, nan)
	require.Equal(t, uint64(0x7ff8_dead_beef_0001), math.Float64bits(view.At[float64](v, 0)))
}

func TestOverlappingViewsAlias(t *testing.T) {
	a, f := newFactory(t)
	buf, err := a.CreateBuffer(16)
	require.NoError(t, err)

	// View A covers bytes [0,16) as uint8; view B covers [4,12) as int32.
	va, err := f.New(api.Uint8, view.Region(buf))
	require.NoError(t, err)
	vb, err := f.New(api.Int32, view.Region(buf).WithOffset(4).WithLength(2))
	require.NoError(t, err)

	// A write through A inside B's range is visible through B.
	view.SetAt[uint8](va, 4, 0x2a)
	require.NotZero(t, view.At[int32](vb, 0))

	// And the other way around.
	view.SetAt[int32](vb, 1, -1)
	for i := 8; i < 12; i++ {
		require.EqualValues(t, 0xff, view.At[uint8](va, i))
	}
}

func TestDynamicIndexAccess(t *testing.T) {
	_, f := newFactory(t)

	v, err := f.New(api.Int16, view.Length(3))
	require.NoError(t, err)

	v.SetIndex(0, -2)
	v.SetIndex(1, 70000)  // wraps modulo 2^16
	v.SetIndex(2, 3.9)    // truncates toward zero
	require.Equal(t, float64(-2), v.Index(0))
	require.Equal(t, float64(int16(70000-65536)), v.Index(1))
	require.Equal(t, float64(3), v.Index(2))

	vf, err := f.New(api.Float64, view.Length(1))
	require.NoError(t, err)
	vf.SetIndex(0, math.NaN())
	require.True(t, math.IsNaN(vf.Index(0)))
}

func TestDynamicIndexNonFiniteIntegerStore(t *testing.T) {
	_, f := newFactory(t)
	v, err := f.New(api.Uint32, view.Length(2))
	require.NoError(t, err)

	v.SetIndex(0, math.NaN())
	v.SetIndex(1, math.Inf(1))
	require.Equal(t, float64(0), v.Index(0))
	require.Equal(t, float64(0), v.Index(1))
}

func TestElementWidthMismatchPanics(t *testing.T) {
	_, f := newFactory(t)
	v, err := f.New(api.Int32, view.Length(1))
	require.NoError(t, err)

	require.Panics(t, func() { view.At[int8](v, 0) })
	require.NotPanics(t, func() { view.At[float32](v, 0) }) // same width reinterpretation
}

func TestViewMetadata(t *testing.T) {
	_, f := newFactory(t)
	v, err := f.New(api.Float32, view.Length(5))
	require.NoError(t, err)

	require.Equal(t, api.Float32, v.ElementType())
	require.Equal(t, 4, v.BytesPerElement())
	require.Equal(t, 5, v.Len())
	require.Equal(t, 20, v.ByteLength())
	require.Equal(t, 0, v.ByteOffset())
	require.Len(t, v.Bytes(), 20)
}
