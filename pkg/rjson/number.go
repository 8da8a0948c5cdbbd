package rjson

import (
	"math"
	"strconv"
)

// Small-integer cache. Integers in [smallIntMin, smallIntMax] are encoded
// from a table of precomputed decimal strings built once at process start
// and never mutated, so concurrent reads need no synchronization.
const (
	smallIntMin = -256
	smallIntMax = 256
)

var smallInts [smallIntMax - smallIntMin + 1]string

func init() {
	for i := range smallInts {
		smallInts[i] = strconv.Itoa(i + smallIntMin)
	}
}

// appendInt appends the decimal form of v. The cached and generic paths
// produce identical bytes; the cache only skips the formatting work.
func appendInt(dst []byte, v int64) []byte {
	if v >= smallIntMin && v <= smallIntMax {
		return append(dst, smallInts[v-smallIntMin]...)
	}
	return strconv.AppendInt(dst, v, 10)
}

// appendFloat appends the shortest decimal form of f that parses back to
// the same 64-bit value. Plain notation is used for the usual range and
// exponent notation outside [1e-6, 1e21), matching what JSON encoders
// conventionally emit. A ".0" suffix is added when the text would
// otherwise read as an integer literal, so floats stay floats across a
// round trip.
func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dst, errNonFinite(f)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// strconv writes a leading zero on small negative exponents
		// ("1e-07"); trim it the way encoding/json does.
		if n := len(dst); n-start >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
		return dst, nil
	}
	for i := len(dst) - 1; i >= start; i-- {
		if dst[i] == '.' {
			return dst, nil
		}
	}
	return append(dst, '.', '0'), nil
}

// parseNumber converts a numeric literal that has already been validated
// against the JSON number grammar. A pure integer literal that fits int64
// becomes an Int; everything else, including integers beyond the 64-bit
// range, becomes a Float with the documented loss of precision.
func parseNumber(lit string, isInt bool) (Value, error) {
	if isInt {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return IntValue(i), nil
		}
		// falls through: magnitude exceeds int64, widen to float
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, err
	}
	return FloatValue(f), nil
}
