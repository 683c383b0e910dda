package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-primer/dsp/spectrum"
)

func ExampleMagnitude() {
	mag := spectrum.Magnitude([]complex128{3 + 4i, 0 + 2i})
	fmt.Printf("%.0f %.0f\n", mag[0], mag[1])

	// Output:
	// 5 2
}

func ExampleUnwrapPhase() {
	out := spectrum.UnwrapPhase([]float64{0, 3, -0.2832, 2.7168})
	fmt.Printf("%.4f %.4f %.4f %.4f\n", out[0], out[1], out[2], out[3])

	// Output:
	// 0.0000 3.0000 6.0000 9.0000
}
