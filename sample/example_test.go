package sample_test

import (
	"fmt"

	"github.com/katalvlaran/lvmotion/minjerk"
	"github.com/katalvlaran/lvmotion/sample"
)

// ExampleWindow builds a grid around a half-second reach.
func ExampleWindow() {
	p := minjerk.Params{T0: 0.5, D: 0.5, Ax: 0.2}
	ts, _ := sample.Window(p, 5, 0.5)
	fmt.Println(ts)
	// Output:
	// [0.25 0.5 0.75 1 1.25]
}
