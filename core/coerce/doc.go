// Package coerce
// Author: momentics <momentics@gmail.com>
//
// Conversion of externally supplied values into validated non-negative
// lengths. This is the shared validation primitive the allocator and
// the view factory both depend on: every offset and length argument
// passes through ToLength before any arithmetic or allocation happens.
package coerce
