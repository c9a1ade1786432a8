package align_test

import (
	"testing"

	"github.com/katalvlaran/lvmotion/align"
	"github.com/katalvlaran/lvmotion/minjerk"
	"github.com/katalvlaran/lvmotion/sample"
)

// benchmarkCompare scores a noisy n-sample reach against the model.
func benchmarkCompare(b *testing.B, n int, mode align.MemoryMode) {
	p := minjerk.Params{T0: 0.1, D: 0.7, Ax: 0.2, Ay: 0.15}
	ts, err := sample.Window(p, n, 0.25)
	if err != nil {
		b.Fatalf("Window failed: %v", err)
	}
	observed := sample.Observe(minjerk.Velocity2D(p, ts).Speed, 1, sample.WithSigma(0.01))
	opts := align.DefaultOptions()
	opts.MemoryMode = mode
	opts.Window = n / 10

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.CompareSpeed(observed, p, ts, &opts); err != nil {
			b.Fatalf("CompareSpeed failed: %v", err)
		}
	}
}

func BenchmarkCompare_FullMatrix500(b *testing.B) { benchmarkCompare(b, 500, align.FullMatrix) }

func BenchmarkCompare_TwoRows500(b *testing.B) { benchmarkCompare(b, 500, align.TwoRows) }
