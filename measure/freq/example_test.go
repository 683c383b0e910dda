package freq_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp-primer/dsp/sinusoid"
	"github.com/cwbudde/algo-dsp-primer/measure/freq"
)

func ExampleDominantOmega() {
	g := sinusoid.NewGenerator()
	x, err := g.ComplexExponential(math.Pi/4, 64)
	if err != nil {
		panic(err)
	}

	omega, err := freq.DominantOmega(x)
	if err != nil {
		panic(err)
	}

	fmt.Printf("omega/pi = %.2f\n", omega/math.Pi)

	// Output:
	// omega/pi = 0.25
}
