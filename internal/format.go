package internal

import (
	"math"
	"strconv"
)

// hexDigits contains lowercase hex characters for \u00XX escape sequences
var hexDigits = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// needsEscapeTable is a pre-computed lookup table for bytes that need escaping.
// Index is the byte value, value is true if escaping is needed.
var needsEscapeTable = [256]bool{
	0x00: true, 0x01: true, 0x02: true, 0x03: true, 0x04: true, 0x05: true, 0x06: true, 0x07: true,
	0x08: true, 0x09: true, 0x0A: true, 0x0B: true, 0x0C: true, 0x0D: true, 0x0E: true, 0x0F: true,
	0x10: true, 0x11: true, 0x12: true, 0x13: true, 0x14: true, 0x15: true, 0x16: true, 0x17: true,
	0x18: true, 0x19: true, 0x1A: true, 0x1B: true, 0x1C: true, 0x1D: true, 0x1E: true, 0x1F: true,
	'"':  true,
	'\\': true,
	// Everything from 0x20 up, including bytes of multi-byte sequences, is written as is
}

// NeedsEscape reports whether s contains a byte that must be escaped
func NeedsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if needsEscapeTable[s[i]] {
			return true
		}
	}
	return false
}

// AppendString appends s to dst as a quoted JSON string.
// Quote, backslash, \b, \f, \n, \r and \t use their two-character escapes, other
// control bytes use \u00xx and all remaining bytes are copied unchanged.
func AppendString(dst []byte, s string) []byte {
	dst = append(dst, '"')

	// Fast path: nothing to escape
	if !NeedsEscape(s) {
		dst = append(dst, s...)
		return append(dst, '"')
	}

	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !needsEscapeTable[c] {
			continue
		}

		if start < i {
			dst = append(dst, s[start:i]...)
		}

		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0f])
		}
		start = i + 1
	}

	if start < len(s) {
		dst = append(dst, s[start:]...)
	}
	return append(dst, '"')
}

// int64 range bounds as floats; both are exact powers of two
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// IsIntegral reports whether f survives a round trip through int64 unchanged
func IsIntegral(f float64) bool {
	if f < minInt64Float || f >= maxInt64Float || f != f {
		return false
	}
	return float64(int64(f)) == f
}

// AppendNumber appends the JSON text of f to dst.
//
// Non-finite values are written as null since JSON cannot represent them. Zero of
// either sign is written as 0. Integral values within the int64 range are written
// without a fractional part; everything else uses the shortest representation that
// parses back to the same float64.
func AppendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	if f == 0 {
		return append(dst, '0')
	}
	if IsIntegral(f) {
		return strconv.AppendInt(dst, int64(f), 10)
	}

	n := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	if len(dst) == n {
		return append(dst, "null"...)
	}
	return dst
}

// TruncInt converts f to a signed integer of the given bit size, truncating
// toward zero and saturating at the bounds. NaN converts to 0.
func TruncInt(f float64, bits int) int64 {
	if f != f {
		return 0
	}
	hi := int64(^uint64(0) >> (65 - bits))
	lo := -hi - 1
	switch {
	case f >= float64(hi):
		return hi
	case f <= float64(lo):
		return lo
	}
	return int64(math.Trunc(f))
}

// TruncUint converts f to an unsigned integer of the given bit size, truncating
// toward zero and saturating at the bounds. NaN and negatives convert to 0.
func TruncUint(f float64, bits int) uint64 {
	if f != f || f <= 0 {
		return 0
	}
	hi := ^uint64(0) >> (64 - bits)
	if f >= float64(hi) {
		return hi
	}
	return uint64(math.Trunc(f))
}
