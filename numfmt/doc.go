// Package numfmt converts between int64 values and their base-10 text form.
//
// FormatNumber renders the canonical decimal representation, with a leading
// '-' for negative values.
//
// ParseNumber deliberately mirrors C++-stream extraction rather than Go's
// strict strconv.ParseInt: leading ASCII whitespace is skipped, an optional
// single sign is consumed, then every following digit — and any trailing
// non-numeric content is simply ignored.  "  -42abc" parses to -42.
// What is NOT tolerated is the absence of any digit: that returns
// ErrNoDigits instead of a silent zero.  A numeric token outside the int64
// range returns ErrOutOfRange.
//
// Round-trip guarantee: ParseNumber(FormatNumber(n)) == n for every int64 n.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gangaji/numfmt"
//
//	numfmt.FormatNumber(-42)      // "-42"
//	numfmt.ParseNumber(" 42abc")  // 42, nil
//	numfmt.ParseNumber("abc")     // 0, ErrNoDigits
package numfmt
