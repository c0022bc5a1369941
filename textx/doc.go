// Package textx provides pure ASCII-oriented text transforms:
// Reverse, ToUpper and ToLower.
//
// 🚀 Design notes:
//
//	All three functions allocate a fresh string and never mutate their
//	input.  Case mapping touches only the ASCII letters a–z / A–Z; every
//	other byte — digits, punctuation, and multi-byte UTF-8 sequences —
//	passes through untouched.
//
//	Reverse operates on raw bytes.  For ASCII input that is exactly
//	character reversal; callers feeding multi-byte UTF-8 should be aware
//	the byte order of each sequence is reversed too.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gangaji/textx"
//
//	textx.Reverse("hello") // "olleh"
//	textx.ToUpper("hello") // "HELLO"
//	textx.ToLower("HELLO") // "hello"
//
// Complexity: O(n) time and one O(n) allocation per call.
package textx
