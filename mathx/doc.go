// Package mathx provides basic integer arithmetic — Add, Multiply and
// Factorial — with an explicit, selectable policy for the one hard question
// signed arithmetic always poses: what happens on overflow?
//
// 🚀 Why not just use `+` and `*`?
//
//	Raw Go operators silently wrap.  That is occasionally what you want and
//	frequently what you ship by accident.  mathx makes the choice explicit:
//	  • Checked  — detect overflow, return ErrOverflow (the default)
//	  • Wrap     — two's-complement wraparound, never errors
//	  • Saturate — clamp to math.MinInt64 / math.MaxInt64, never errors
//
// ✨ Key properties:
//   - Pure functions: no state, no I/O, reentrant by construction
//   - Factorial is iterative (product of 1..n); Factorial(0) == 1
//   - Negative Factorial input is rejected with ErrNegativeInput rather
//     than quietly returning the multiplicative identity
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gangaji/mathx"
//
//	sum, err := mathx.Add(a, b, nil)                 // Checked by default
//
//	opts := mathx.DefaultOptions()
//	opts.OverflowMode = mathx.Saturate
//	prod, _ := mathx.Multiply(a, b, &opts)           // clamps instead of failing
//
// Complexity:
//
//	Add, Multiply — O(1).  Factorial — O(n) multiplications.
package mathx
