package numfmt

import "errors"

var (
	// ErrNoDigits indicates the input held no decimal digit after optional
	// leading whitespace and sign.
	ErrNoDigits = errors.New("numfmt: no numeric token at start of input")

	// ErrOutOfRange indicates the numeric token does not fit in int64.
	ErrOutOfRange = errors.New("numfmt: number out of int64 range")
)
