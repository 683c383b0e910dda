// Package parity decomposes a finite discrete signal into even and odd
// parts.
//
// Any signal splits uniquely into a symmetric and an antisymmetric
// component about index 0. The decomposition here operates on the signal's
// zero-padded embedding over a symmetric index range, so the parts are
// defined even when the input only covers nonnegative indices.
package parity
