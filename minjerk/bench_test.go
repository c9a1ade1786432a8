package minjerk_test

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmotion/minjerk"
)

// benchmarkEvaluate runs Evaluate over n evenly spaced times with opts.
func benchmarkEvaluate(b *testing.B, n int, opts ...minjerk.Option) {
	p := minjerk.Params{T0: 0.1, D: 0.8, Ax: 0.25, Ay: -0.1}
	ts := make([]float64, n)
	floats.Span(ts, 0, 1)
	var dst minjerk.Profile

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := minjerk.EvaluateInto(&dst, p, ts, opts...); err != nil {
			b.Fatalf("EvaluateInto failed: %v", err)
		}
	}
}

func BenchmarkEvaluate_Small(b *testing.B) { benchmarkEvaluate(b, 1_000) }

func BenchmarkEvaluate_Large(b *testing.B) { benchmarkEvaluate(b, 1_000_000) }

func BenchmarkEvaluate_LargeWorkers4(b *testing.B) {
	benchmarkEvaluate(b, 1_000_000, minjerk.WithWorkers(4))
}

// BenchmarkVelocity2D measures the unchecked path including allocation.
func BenchmarkVelocity2D(b *testing.B) {
	p := minjerk.Params{T0: 0.1, D: 0.8, Ax: 0.25, Ay: -0.1}
	ts := make([]float64, 10_000)
	floats.Span(ts, 0, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = minjerk.Velocity2D(p, ts)
	}
}
