package mathx_test

import (
	"testing"

	"github.com/katalvlaran/gangaji/mathx"
)

// benchmarkFactorial runs Factorial(n) under opts, failing on unexpected errors.
func benchmarkFactorial(b *testing.B, n int64, opts mathx.Options) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := mathx.Factorial(n, &opts); err != nil {
			b.Fatalf("Factorial failed: %v", err)
		}
	}
}

// BenchmarkAdd_Checked benchmarks the default checked sum.
func BenchmarkAdd_Checked(b *testing.B) {
	opts := mathx.DefaultOptions()
	for i := 0; i < b.N; i++ {
		if _, err := mathx.Add(int64(i), 3, &opts); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkMultiply_Wrap benchmarks wraparound products.
func BenchmarkMultiply_Wrap(b *testing.B) {
	opts := mathx.DefaultOptions()
	opts.OverflowMode = mathx.Wrap
	for i := 0; i < b.N; i++ {
		if _, err := mathx.Multiply(int64(i), 1<<40, &opts); err != nil {
			b.Fatalf("Multiply failed: %v", err)
		}
	}
}

// BenchmarkFactorial_Small benchmarks 10! in Checked mode.
func BenchmarkFactorial_Small(b *testing.B) {
	benchmarkFactorial(b, 10, mathx.DefaultOptions())
}

// BenchmarkFactorial_Max benchmarks 20!, the largest checked factorial.
func BenchmarkFactorial_Max(b *testing.B) {
	benchmarkFactorial(b, 20, mathx.DefaultOptions())
}
