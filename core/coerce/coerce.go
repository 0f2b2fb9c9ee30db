// File: core/coerce/coerce.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ToLength and its numeric conversion ladder. The ladder mirrors the
// loosely-typed host it was lifted from: values already representable
// as unsigned 32-bit integers pass straight through, everything else
// goes generic-to-number and then through a 32-bit signed wrap before
// the sign and ceiling checks.

package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/momentics/hioload-arrays/api"
)

const two32 = 1 << 32

// ToLength converts v into a validated non-negative length.
//
// A value that already is a non-negative integer within unsigned 32-bit
// range returns directly; downstream byte-size ceilings still apply to
// whatever is computed from it. Other values are converted to a number
// (see toNumber), wrapped into signed 32-bit range with toInt32, and
// then validated: negative values fail with api.ErrInvalidLength,
// values above api.MaxLength fail with api.ErrLengthTooLarge. Overflow
// is a hard reject: on any failure the returned length is 0 and nothing
// may be allocated from it.
//
// A conversion error from an api.Numeric value aborts immediately and
// passes through to the caller unreinterpreted.
func ToLength(v any) (int, error) {
	if n, ok := asUint32(v); ok {
		return n, nil
	}

	f, err := toNumber(v)
	if err != nil {
		return 0, err
	}

	raw := toInt32(f)
	if raw < 0 {
		return 0, api.ErrInvalidLength
	}
	if raw > api.MaxLength {
		return 0, api.ErrLengthTooLarge
	}
	return int(raw), nil
}

// asUint32 is the fast path for values whose numeric value is integral
// and within [0, 2^32). Floats qualify when they hold an exact integer
// in that range.
func asUint32(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		if n >= 0 && int64(n) <= math.MaxUint32 {
			return n, true
		}
	case int8:
		if n >= 0 {
			return int(n), true
		}
	case int16:
		if n >= 0 {
			return int(n), true
		}
	case int32:
		if n >= 0 {
			return int(n), true
		}
	case int64:
		if n >= 0 && n <= math.MaxUint32 {
			return int(n), true
		}
	case uint:
		if uint64(n) <= math.MaxUint32 {
			return int(n), true
		}
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n <= math.MaxUint32 {
			return int(n), true
		}
	case float32:
		return asUint32(float64(n))
	case float64:
		if n >= 0 && n <= math.MaxUint32 && n == math.Trunc(n) && !math.Signbit(n) {
			return int(n), true
		}
	}
	return 0, false
}

// toNumber is the generic-to-numeric conversion. Numeric kinds widen to
// float64; booleans map to 0/1; nil maps to NaN (so a missing value
// coerces to length 0 further down); strings parse the way a host's
// number conversion would, yielding NaN rather than an error on
// malformed input. Values carrying their own conversion (api.Numeric)
// delegate, and their error is propagated as-is. Anything else cannot
// be converted and fails.
func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return math.NaN(), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		return parseNumber(n), nil
	case api.Numeric:
		return n.ToNumber()
	default:
		return 0, fmt.Errorf("cannot convert %T to a number", v)
	}
}

// parseNumber follows host string-to-number rules: empty and blank
// strings are 0, leading/trailing whitespace is ignored, hex and binary
// prefixes are honored, and anything unparsable is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return float64(u)
	}
	return math.NaN()
}

// toInt32 applies the standard number-to-signed-32-bit wrap: NaN and
// infinities map to 0, the rest truncates toward zero and wraps modulo
// 2^32 into [-2^31, 2^31).
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	t := math.Trunc(f)
	r := math.Mod(t, two32)
	if r < 0 {
		r += two32
	}
	if r >= two32/2 {
		r -= two32
	}
	return int32(r)
}
