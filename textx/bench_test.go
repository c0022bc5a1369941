package textx_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gangaji/textx"
)

// benchInput builds a deterministic mixed-case ASCII string of length n.
func benchInput(n int) string {
	return strings.Repeat("Hello World 42! ", n/16+1)[:n]
}

// BenchmarkReverse_1K benchmarks byte reversal of a 1 KiB string.
func BenchmarkReverse_1K(b *testing.B) {
	s := benchInput(1 << 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = textx.Reverse(s)
	}
}

// BenchmarkToUpper_1K benchmarks ASCII uppercasing of a 1 KiB string.
func BenchmarkToUpper_1K(b *testing.B) {
	s := benchInput(1 << 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = textx.ToUpper(s)
	}
}

// BenchmarkToLower_64K benchmarks ASCII lowercasing of a 64 KiB string.
func BenchmarkToLower_64K(b *testing.B) {
	s := benchInput(1 << 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = textx.ToLower(s)
	}
}
