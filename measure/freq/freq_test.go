package freq

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dsp-primer/dsp/core"
	"github.com/cwbudde/algo-dsp-primer/dsp/sinusoid"
)

func TestResolution(t *testing.T) {
	r, err := Resolution(32)
	if err != nil {
		t.Fatalf("Resolution() error = %v", err)
	}
	if !core.NearlyEqual(r, 2*math.Pi/32, 1e-12) {
		t.Fatalf("Resolution(32) = %v, want 2*pi/32", r)
	}

	if _, err := Resolution(0); err == nil {
		t.Fatal("expected error for n = 0")
	}
}

func TestDominantOmegaOnBin(t *testing.T) {
	// pi/4 = 2*pi*8/64, an exact bin of a 64-point transform.
	g := sinusoid.NewGenerator()
	x, err := g.ComplexExponential(math.Pi/4, 64)
	if err != nil {
		t.Fatalf("ComplexExponential() error = %v", err)
	}

	omega, err := DominantOmega(x)
	if err != nil {
		t.Fatalf("DominantOmega() error = %v", err)
	}
	if !core.NearlyEqual(omega, math.Pi/4, 1e-9) {
		t.Fatalf("omega = %v, want pi/4", omega)
	}
}

func TestDominantOmegaNegativeFrequency(t *testing.T) {
	g := sinusoid.NewGenerator()
	x, err := g.ComplexExponential(-math.Pi/4, 64)
	if err != nil {
		t.Fatalf("ComplexExponential() error = %v", err)
	}

	omega, err := DominantOmega(x)
	if err != nil {
		t.Fatalf("DominantOmega() error = %v", err)
	}
	if !core.NearlyEqual(omega, -math.Pi/4, 1e-9) {
		t.Fatalf("omega = %v, want -pi/4", omega)
	}
}

func TestDominantOmegaAliasInvariant(t *testing.T) {
	g := sinusoid.NewGenerator()
	omega := math.Pi / 8

	base, err := g.ComplexExponential(omega, 64)
	if err != nil {
		t.Fatalf("ComplexExponential() error = %v", err)
	}
	aliased, err := g.ComplexExponential(sinusoid.Alias(omega, 1), 64)
	if err != nil {
		t.Fatalf("ComplexExponential() error = %v", err)
	}

	got1, err := DominantOmega(base)
	if err != nil {
		t.Fatalf("DominantOmega() error = %v", err)
	}
	got2, err := DominantOmega(aliased)
	if err != nil {
		t.Fatalf("DominantOmega() error = %v", err)
	}
	if got1 != got2 {
		t.Fatalf("alias estimate mismatch: %v != %v", got1, got2)
	}
}

func TestDominantOmegaOffBinWithinResolution(t *testing.T) {
	g := sinusoid.NewGenerator()
	omega := 0.4

	x, err := g.ComplexExponential(omega, 128)
	if err != nil {
		t.Fatalf("ComplexExponential() error = %v", err)
	}

	got, err := DominantOmega(x)
	if err != nil {
		t.Fatalf("DominantOmega() error = %v", err)
	}

	r, err := Resolution(128)
	if err != nil {
		t.Fatalf("Resolution() error = %v", err)
	}
	if math.Abs(got-omega) > r {
		t.Fatalf("omega = %v, want within %v of %v", got, r, omega)
	}
}

func TestDominantFrequencySine(t *testing.T) {
	// 1500 Hz = 16 * 48000/512, an exact bin of a 512-point transform.
	g := sinusoid.NewGenerator(core.WithSampleRate(48000))
	x, err := g.Sine(1500, 1, 512)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	f, err := DominantFrequency(x, 48000)
	if err != nil {
		t.Fatalf("DominantFrequency() error = %v", err)
	}
	if !core.NearlyEqual(f, 1500, 1e-9) {
		t.Fatalf("f = %v, want 1500", f)
	}
}

func TestInvalidInputs(t *testing.T) {
	if _, err := DominantOmega(nil); err == nil {
		t.Fatal("expected error for empty complex input")
	}
	if _, err := DominantFrequency(nil, 48000); err == nil {
		t.Fatal("expected error for empty real input")
	}
	if _, err := DominantFrequency([]float64{1, 2}, 0); err == nil {
		t.Fatal("expected error for invalid sample rate")
	}
}
