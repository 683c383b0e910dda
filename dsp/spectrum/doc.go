// Package spectrum provides magnitude, power, and phase extraction for
// complex sequences.
//
// The package intentionally does not implement FFT itself. It operates on
// complex values produced elsewhere, whether time-domain samples of a
// complex sinusoid or spectrum bins from an external FFT backend.
package spectrum
