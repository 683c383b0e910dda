package freq

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-dsp-primer/dsp/core"
	"github.com/cwbudde/algo-dsp-primer/dsp/spectrum"
)

// Resolution returns the frequency resolution 2*pi/n in radians per sample
// for an observation of n samples.
//
// Two digital frequencies closer than this cannot be told apart from n
// samples alone.
func Resolution(n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("resolution observation length must be > 0: %d", n)
	}
	return core.TwoPi / float64(n), nil
}

// DominantOmega estimates the dominant digital frequency of a complex
// sequence by FFT peak picking.
//
// The sequence is zero-padded to a power of two, transformed, and the bin
// with the largest power selected. Bins above n/2 map to negative
// frequencies, so the result lies in [-pi, pi). The estimate is quantized
// to the transform's bin spacing; see [Resolution].
func DominantOmega(x []complex128) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("dominant omega input must not be empty")
	}

	fftSize := nextPow2(len(x))
	padded := make([]complex128, fftSize)
	copy(padded, x)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("dominant omega fft plan: %w", err)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, padded); err != nil {
		return 0, fmt.Errorf("dominant omega fft: %w", err)
	}

	peak := peakIndex(spectrum.Power(bins))
	if peak > fftSize/2 {
		peak -= fftSize
	}
	return core.TwoPi * float64(peak) / float64(fftSize), nil
}

// DominantFrequency estimates the dominant frequency in Hz of a real signal
// sampled at sampleRate.
//
// The signal is zero-padded to a power of two and transformed with a real
// FFT; the peak magnitude bin determines the result, quantized to
// sampleRate/fftSize.
func DominantFrequency(x []float64, sampleRate float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("dominant frequency input must not be empty")
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("dominant frequency sample rate must be > 0: %f", sampleRate)
	}

	fftSize := nextPow2(len(x))
	padded := make([]float64, fftSize)
	copy(padded, x)

	fft := fourier.NewFFT(fftSize)
	bins := fft.Coefficients(nil, padded)

	peak := peakIndex(spectrum.Power(bins))
	return float64(peak) * sampleRate / float64(fftSize), nil
}

func peakIndex(power []float64) int {
	peak := 0
	for i, p := range power {
		if p > power[peak] {
			peak = i
		}
	}
	return peak
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
