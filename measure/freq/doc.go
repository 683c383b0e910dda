// Package freq estimates the dominant frequency of short sequences by FFT
// peak picking, and exposes the frequency resolution that bounds how sharp
// such an estimate can be.
package freq
