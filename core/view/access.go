// File: core/view/access.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element access. Two surfaces exist: generic At/SetAt for statically
// typed callers, and Index/SetIndex for the dynamic entry points, which
// move float64 values and apply the host's store conversions (truncate
// and wrap for integer elements). Both read and write the platform's
// native representation directly; alignment is guaranteed because the
// byte offset is a multiple of the element size and the storage base is
// at least word-aligned.

package view

import (
	"math"
	"unsafe"

	"github.com/momentics/hioload-arrays/api"
)

// Element constrains the eight supported element kinds.
type Element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 | ~float64
}

// At reads element i of v as E. E's width must equal the view's element
// width; same-width reinterpretation (e.g. reading an int32 view as
// float32 bits) is permitted the way any aliasing view would be.
func At[E Element](v *View, i int) E {
	size := int(unsafe.Sizeof(*new(E)))
	if size != v.elem.Size() {
		panic("view: element width mismatch")
	}
	return *(*E)(unsafe.Pointer(&v.data[i*size]))
}

// SetAt writes element i of v. Width rules match At.
func SetAt[E Element](v *View, i int, val E) {
	size := int(unsafe.Sizeof(val))
	if size != v.elem.Size() {
		panic("view: element width mismatch")
	}
	*(*E)(unsafe.Pointer(&v.data[i*size])) = val
}

// Index reads element i as a float64. Every supported element value is
// exactly representable.
func (v *View) Index(i int) float64 {
	switch v.elem {
	case api.Int8:
		return float64(At[int8](v, i))
	case api.Uint8:
		return float64(At[uint8](v, i))
	case api.Int16:
		return float64(At[int16](v, i))
	case api.Uint16:
		return float64(At[uint16](v, i))
	case api.Int32:
		return float64(At[int32](v, i))
	case api.Uint32:
		return float64(At[uint32](v, i))
	case api.Float32:
		return float64(At[float32](v, i))
	default:
		return At[float64](v, i)
	}
}

// SetIndex stores val into element i, applying the store conversion for
// the element type: integer elements truncate toward zero and wrap
// modulo 2^width, float32 rounds to single precision, float64 stores
// as-is (NaN payloads included).
func (v *View) SetIndex(i int, val float64) {
	switch v.elem {
	case api.Int8:
		SetAt(v, i, int8(wrapInt(val, 8)))
	case api.Uint8:
		SetAt(v, i, uint8(wrapInt(val, 8)))
	case api.Int16:
		SetAt(v, i, int16(wrapInt(val, 16)))
	case api.Uint16:
		SetAt(v, i, uint16(wrapInt(val, 16)))
	case api.Int32:
		SetAt(v, i, int32(wrapInt(val, 32)))
	case api.Uint32:
		SetAt(v, i, uint32(wrapInt(val, 32)))
	case api.Float32:
		SetAt(v, i, float32(val))
	default:
		SetAt(v, i, val)
	}
}

// wrapInt truncates toward zero and wraps modulo 2^bits. NaN and
// infinities store as zero.
func wrapInt(f float64, bits uint) uint64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	modulus := math.Ldexp(1, int(bits)) // 2^bits, exact
	r := math.Mod(math.Trunc(f), modulus)
	if r < 0 {
		r += modulus
	}
	return uint64(r)
}
