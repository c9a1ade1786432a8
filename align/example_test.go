package align_test

import (
	"fmt"

	"github.com/katalvlaran/lvmotion/align"
)

// ExampleDistance aligns a trace that lingers one sample at its midpoint.
func ExampleDistance() {
	opts := align.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := align.Distance([]float64{0, 1, 2}, []float64{0, 1, 1, 2}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}
