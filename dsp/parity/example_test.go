package parity_test

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-primer/dsp/parity"
)

func ExampleDecompose() {
	x := []float64{2, 1, -1, 3, 2}
	n := []int{0, 1, 2, 3, 4}

	d, err := parity.Decompose(x, n)
	if err != nil {
		panic(err)
	}

	fmt.Println(d.Index)
	fmt.Println(d.Even)
	fmt.Println(d.Odd)

	// Output:
	// [-4 -3 -2 -1 0 1 2 3 4]
	// [1 1.5 -0.5 0.5 2 0.5 -0.5 1.5 1]
	// [-1 -1.5 0.5 -0.5 0 0.5 -0.5 1.5 1]
}
