// Package periodic decides whether a discrete complex exponential repeats.
//
// Unlike its continuous-time counterpart, the sequence e^(j*omega*n) is
// periodic only for digital frequencies that are rational multiples of
// 2*pi. The package performs a bounded brute-force search for the smallest
// qualifying period.
package periodic
