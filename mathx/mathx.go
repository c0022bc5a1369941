package mathx

import "math"

// Add returns a + b under the configured overflow policy.
// A nil opts pointer selects DefaultOptions (Checked).
//
// Errors:
//   - ErrOverflow — Checked mode and the exact sum does not fit in int64.
//   - ErrBadMode  — opts carries an OverflowMode outside the known set.
//
// Example:
//
//	sum, err := mathx.Add(2, 3, nil) // 5, nil
func Add(a, b int64, opts *Options) (int64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	sum := a + b
	if !addOverflows(a, b, sum) {
		return sum, nil
	}

	switch o.OverflowMode {
	case Wrap:
		return sum, nil
	case Saturate:
		// b decides the direction: same-sign operands pushed past a bound.
		if b > 0 {
			return math.MaxInt64, nil
		}
		return math.MinInt64, nil
	default:
		return 0, ErrOverflow
	}
}

// Multiply returns a * b under the configured overflow policy.
// A nil opts pointer selects DefaultOptions (Checked).
//
// Errors: same set as Add.
func Multiply(a, b int64, opts *Options) (int64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	prod := a * b
	if !mulOverflows(a, b, prod) {
		return prod, nil
	}

	switch o.OverflowMode {
	case Wrap:
		return prod, nil
	case Saturate:
		if sameSign(a, b) {
			return math.MaxInt64, nil
		}
		return math.MinInt64, nil
	default:
		return 0, ErrOverflow
	}
}

// Factorial returns n! for n >= 0, computed as the iterative product 1..n.
// Factorial(0) == 1. A nil opts pointer selects DefaultOptions (Checked).
//
// Negative n is a domain error regardless of mode: the degenerate
// "empty loop returns 1" reading is rejected in favor of an explicit failure.
//
// Errors:
//   - ErrNegativeInput — n < 0.
//   - ErrOverflow      — Checked mode and n! exceeds int64 (n > 20).
//   - ErrBadMode       — opts carries an OverflowMode outside the known set.
func Factorial(n int64, opts *Options) (int64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegativeInput
	}

	acc := int64(1)
	for i := int64(2); i <= n; i++ {
		next := acc * i
		if mulOverflows(acc, i, next) {
			switch o.OverflowMode {
			case Wrap:
				// keep wrapping, exactly like a chain of raw * operators
			case Saturate:
				return math.MaxInt64, nil
			default:
				return 0, ErrOverflow
			}
		}
		acc = next
	}
	return acc, nil
}

// addOverflows reports whether sum = a + b wrapped.
func addOverflows(a, b, sum int64) bool {
	return (b > 0 && sum < a) || (b < 0 && sum > a)
}

// mulOverflows reports whether prod = a * b wrapped.
// The a == -1 / b == -1 branches avoid the MinInt64 / -1 division trap.
func mulOverflows(a, b, prod int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == -1 {
		return b == math.MinInt64
	}
	if b == -1 {
		return a == math.MinInt64
	}
	return prod/b != a
}

// sameSign reports whether a and b are both positive or both negative.
func sameSign(a, b int64) bool {
	return (a > 0) == (b > 0)
}
