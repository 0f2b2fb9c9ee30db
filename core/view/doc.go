// Package view
// Author: momentics <momentics@gmail.com>
//
// Typed view construction over buffer storage. The factory consumes an
// already-disambiguated Request (fresh length vs. region of an existing
// buffer), validates offset/length arithmetic and alignment, and
// produces a View aliasing the buffer's bytes without copying. Element
// access uses the platform's native representation: two's-complement
// integers and IEEE-754 floats.
package view
