package sinusoid

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp-primer/dsp/core"
)

// Generator creates deterministic test sequences from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured sequence generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// ComplexExponential generates x[n] = e^(j*omega*n) for n = 0..samples-1.
//
// omega is the digital frequency in radians per sample. Every sample lies on
// the unit circle regardless of omega.
func (g *Generator) ComplexExponential(omega float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("complex exponential samples must be > 0: %d", samples)
	}
	out := make([]complex128, samples)
	for i := range out {
		s, c := math.Sincos(omega * float64(i))
		out[i] = complex(c, s)
	}
	return out, nil
}

// Sine generates a sine wave at freqHz using the configured sample rate.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := core.TwoPi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// SineAt samples sin(omega*n) at the given integer indices.
//
// Indices may be negative; there is no ordering requirement.
func SineAt(omega float64, n []int) ([]float64, error) {
	if len(n) == 0 {
		return nil, fmt.Errorf("sine indices must not be empty")
	}
	out := make([]float64, len(n))
	for i, k := range n {
		out[i] = math.Sin(omega * float64(k))
	}
	return out, nil
}

// Geometric generates x[n] = base^n for n = 0..samples-1.
func Geometric(base float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("geometric samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	v := 1.0
	for i := range out {
		out[i] = v
		v *= base
	}
	return out, nil
}

// Alias returns the frequency omega + 2*pi*k.
//
// Complex exponentials at aliased frequencies produce identical sequences:
// e^(j(omega+2*pi*k)n) = e^(j*omega*n) for all integers n and k.
func Alias(omega float64, k int) float64 {
	return omega + core.TwoPi*float64(k)
}

// WrapToPrincipal wraps omega into the principal interval (-pi, pi].
func WrapToPrincipal(omega float64) float64 {
	w := math.Mod(omega, core.TwoPi)
	switch {
	case w > math.Pi:
		w -= core.TwoPi
	case w <= -math.Pi:
		w += core.TwoPi
	}
	return w
}

// MaxDeviation returns the largest pointwise distance max |a[i] - b[i]|.
func MaxDeviation(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("deviation length mismatch: %d != %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("deviation input must not be empty")
	}
	maxAbs := 0.0
	for i := range a {
		d := cmplx.Abs(a[i] - b[i])
		if d > maxAbs {
			maxAbs = d
		}
	}
	return maxAbs, nil
}
