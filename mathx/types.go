// Package mathx defines the option surface for integer arithmetic.
package mathx

// OverflowMode controls what Add, Multiply and Factorial do when the exact
// mathematical result falls outside the int64 range.
//
//   - Checked  — detect the condition and return ErrOverflow.
//     The returned value is 0 and must not be used.
//
//   - Wrap     — standard two's-complement wraparound, exactly what the raw
//     Go operators produce.  Never errors.
//
//   - Saturate — clamp to math.MaxInt64 on positive overflow and
//     math.MinInt64 on negative overflow.  Never errors.
type OverflowMode int

const (
	// Checked mode: overflow is an error (ErrOverflow). The default.
	Checked OverflowMode = iota

	// Wrap mode: two's-complement wraparound, no error reporting.
	Wrap

	// Saturate mode: clamp to the nearest representable bound, no error.
	Saturate
)

// String returns the flag-friendly name of the mode.
func (m OverflowMode) String() string {
	switch m {
	case Checked:
		return "checked"
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	default:
		return "unknown"
	}
}

// ParseOverflowMode maps a flag-friendly name back to an OverflowMode.
// Unknown names yield ErrBadMode.
func ParseOverflowMode(name string) (OverflowMode, error) {
	switch name {
	case "checked":
		return Checked, nil
	case "wrap":
		return Wrap, nil
	case "saturate":
		return Saturate, nil
	default:
		return Checked, ErrBadMode
	}
}

// Option configures arithmetic behavior via functional arguments.
type Option func(*Options)

// Options holds parameters that customize arithmetic execution.
//
// Example:
//
//	opts := mathx.DefaultOptions()
//	opts.OverflowMode = mathx.Wrap
//	sum, _ := mathx.Add(a, b, &opts) // wraps like the raw + operator
type Options struct {
	// OverflowMode selects Checked, Wrap or Saturate semantics.
	OverflowMode OverflowMode
}

// DefaultOptions returns Options with sane defaults:
//   - OverflowMode == Checked (overflow is a reported error).
func DefaultOptions() Options {
	return Options{OverflowMode: Checked}
}

// WithOverflowMode sets the overflow policy.
func WithOverflowMode(m OverflowMode) Option {
	return func(o *Options) {
		o.OverflowMode = m
	}
}

// NewOptions builds Options from DefaultOptions plus the given setters.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolve normalizes a possibly-nil Options pointer and validates the mode.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	if opts.OverflowMode < Checked || opts.OverflowMode > Saturate {
		return Options{}, ErrBadMode
	}
	return *opts, nil
}
