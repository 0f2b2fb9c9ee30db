// Package arrays
// Author: momentics <momentics@gmail.com>
//
// The inbound boundary for script hosts: one variable-arity entry point
// per constructible type (ArrayBuffer, Int8Array ... Float64Array),
// each receiving the ordered argument list exactly as the script
// supplied it. This layer sniffs the call shape (first argument a
// buffer handle or a length) and hands the core an already
// disambiguated, tagged request. Nothing below this package looks at
// raw argument lists.
package arrays
