// Package gangaji is a compact toolkit of pure, reentrant helper functions
// for whole numbers and ASCII text — the primitives every demo, koan and
// kata reaches for first.
//
// 🚀 What is gangaji?
//
//	A small library that brings together:
//		• Arithmetic: Add, Multiply, Factorial with explicit overflow policies
//		• Text transforms: Reverse, ToUpper, ToLower (ASCII-oriented, pure)
//		• Decimal formatting: FormatNumber, ParseNumber with stream-style parsing
//
// ✨ Why choose gangaji?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest edge cases – overflow, negative factorial and unparsable input
//     are explicit named errors, never silent garbage
//   - Pure Go – no cgo, every function side-effect free and safe to call
//     concurrently without synchronization
//   - Predictable – one documented policy per partial domain, selectable
//     where it matters (Checked, Wrap, Saturate)
//
// Under the hood, everything is organized under three subpackages:
//
//	mathx/  — integer arithmetic with selectable overflow handling
//	textx/  — ASCII text transforms
//	numfmt/ — base-10 formatting and forgiving stream-style parsing
//
// A cobra-based demo driver lives in cmd/gangaji; run `gangaji demo` for the
// classic sample session, or `gangaji ask` for an interactive prompt.
//
//	go get github.com/katalvlaran/gangaji
package gangaji
