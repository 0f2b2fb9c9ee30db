// File: api/elements.go
// Author: momentics <momentics@gmail.com>
//
// Element type descriptors for typed views and the global size ceilings
// shared by coercion and allocation.

package api

// ElementType enumerates the numeric interpretations a view may apply
// to the bytes it aliases.
type ElementType int

const (
	Int8 ElementType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

// Size ceilings, both inherited from the 32-bit handle model.
const (
	// MaxLength caps lengths on the wrapped conversion path; values
	// already representable as unsigned 32-bit integers bypass it.
	MaxLength = 0x3fffffff
	// MaxBufferBytes is the largest byte size CreateBuffer will accept.
	MaxBufferBytes = 0x7fffffff
)

// Size returns the element width in bytes (1, 2, 4 or 8).
func (e ElementType) Size() int {
	switch e {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

func (e ElementType) String() string {
	switch e {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}
