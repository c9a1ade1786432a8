package minjerk_test

import (
	"fmt"

	"github.com/katalvlaran/lvmotion/minjerk"
)

// ExampleVelocity2D evaluates a 10-unit reach along x over one second.
func ExampleVelocity2D() {
	p := minjerk.Params{T0: 0, D: 1, Ax: 10, Ay: 0}
	prof := minjerk.Velocity2D(p, []float64{0, 0.25, 0.5, 0.75, 1, 1.5})

	fmt.Println("Vx:   ", prof.Vx)
	fmt.Println("Vy:   ", prof.Vy)
	fmt.Println("Speed:", prof.Speed)
	// Output:
	// Vx:    [0 10.546875 18.75 10.546875 0 0]
	// Vy:    [0 0 0 0 0 0]
	// Speed: [0 10.546875 18.75 10.546875 0 0]
}

// ExampleEvaluate shows the zero-duration guard.
func ExampleEvaluate() {
	_, err := minjerk.Evaluate(minjerk.Params{D: 0, Ax: 1}, []float64{0})
	fmt.Println(err)
	// Output:
	// Evaluate: D=0: minjerk: movement duration is zero
}

// ExamplePeak reports where the bell curve tops out.
func ExamplePeak() {
	t, v := minjerk.Peak(minjerk.Params{T0: 0.2, D: 0.6, Ax: 0.3, Ay: 0.4})
	fmt.Printf("t=%.2f speed=%.4f\n", t, v)
	// Output:
	// t=0.50 speed=1.5625
}
