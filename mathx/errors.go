package mathx

import "errors"

var (
	// ErrOverflow indicates the exact result does not fit in int64
	// while OverflowMode is Checked.
	ErrOverflow = errors.New("mathx: integer overflow")

	// ErrNegativeInput indicates Factorial received n < 0.
	ErrNegativeInput = errors.New("mathx: factorial of negative number is undefined")

	// ErrBadMode indicates an OverflowMode outside Checked/Wrap/Saturate.
	ErrBadMode = errors.New("mathx: unknown overflow mode")
)
