// Package sinusoid generates elementary discrete-time sequences.
//
// The central sequence is the complex exponential x[n] = e^(j*omega*n),
// parameterized by the digital frequency omega in radians per sample.
// Helpers for frequency aliasing make the 2*pi ambiguity of digital
// frequencies explicit.
package sinusoid
