package numfmt

import (
	"math"
	"strconv"
)

// FormatNumber returns the canonical base-10 representation of n,
// including a leading '-' for negative values.
func FormatNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ParseNumber extracts a leading decimal integer from s.
//
// Scanning proceeds in three steps: skip ASCII whitespace, consume an
// optional single '+' or '-', then consume decimal digits.  Everything
// after the last digit is ignored.
//
// Errors:
//   - ErrNoDigits   — no digit follows the optional whitespace and sign.
//   - ErrOutOfRange — the digit run encodes a value outside int64.
func ParseNumber(s string) (int64, error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// Accumulate the magnitude in uint64 so that MinInt64, whose absolute
	// value exceeds MaxInt64, stays representable during the scan.
	start := i
	var mag uint64
	overflow := false
	for ; i < len(s) && isDigit(s[i]); i++ {
		d := uint64(s[i] - '0')
		if mag > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		mag = mag*10 + d
	}
	if i == start {
		return 0, ErrNoDigits
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if overflow || mag > limit {
		return 0, ErrOutOfRange
	}

	if neg {
		// mag may equal 2^63 here; the conversion-then-negate pair lands
		// exactly on MinInt64.
		return -int64(mag), nil
	}
	return int64(mag), nil
}

// isSpace reports whether c is one of the six ASCII whitespace bytes.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
