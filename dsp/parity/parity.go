package parity

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Decomposition holds the even and odd parts of a signal over the symmetric
// index range -(L-1)..(L-1), aligned position-for-position with Index.
type Decomposition struct {
	Index []int
	Even  []float64
	Odd   []float64
}

// Decompose splits the signal x, sampled at the integer indices n, into its
// even and odd parts.
//
// The signal is first embedded into a zero-padded array over the symmetric
// index range -(L-1)..(L-1), where L = len(x). Each sample is placed at the
// slot of its own index; negative indices are embedded directly, not
// mirrored. The even and odd parts are then taken against the full reversal
// of that array:
//
//	even = (extended + reversed) / 2
//	odd  = (extended - reversed) / 2
//
// so that even + odd reconstructs the zero-padded embedding exactly.
func Decompose(x []float64, n []int) (*Decomposition, error) {
	extended, index, err := Extend(x, n)
	if err != nil {
		return nil, err
	}

	reversed := make([]float64, len(extended))
	for i, v := range extended {
		reversed[len(extended)-1-i] = v
	}

	even := append([]float64(nil), extended...)
	vecmath.AddBlockInPlace(even, reversed)
	vecmath.ScaleBlock(even, even, 0.5)

	vecmath.ScaleBlock(reversed, reversed, -1)
	odd := append([]float64(nil), extended...)
	vecmath.AddBlockInPlace(odd, reversed)
	vecmath.ScaleBlock(odd, odd, 0.5)

	return &Decomposition{
		Index: index,
		Even:  even,
		Odd:   odd,
	}, nil
}

// Extend embeds x into a zero-initialized array over the symmetric index
// range -(L-1)..(L-1) and returns the array together with the range.
func Extend(x []float64, n []int) ([]float64, []int, error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(x) != len(n) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(n))
	}
	for i := 1; i < len(n); i++ {
		if n[i] <= n[i-1] {
			return nil, nil, fmt.Errorf("%w: n[%d]=%d, n[%d]=%d", ErrIndexOrder, i-1, n[i-1], i, n[i])
		}
	}

	length := len(x)
	index := make([]int, 2*length-1)
	for i := range index {
		index[i] = i - (length - 1)
	}

	extended := make([]float64, len(index))
	for i, sample := range x {
		pos := length - 1 + n[i]
		if pos < 0 || pos >= len(extended) {
			return nil, nil, fmt.Errorf("%w: n[%d]=%d, range [%d, %d]", ErrIndexRange, i, n[i], -(length - 1), length-1)
		}
		extended[pos] = sample
	}

	return extended, index, nil
}

// Reconstruct returns the pointwise sum of the even and odd parts, which
// equals the zero-padded embedding of the original signal.
func (d *Decomposition) Reconstruct() []float64 {
	out := append([]float64(nil), d.Even...)
	vecmath.AddBlockInPlace(out, d.Odd)
	return out
}

// Symmetric reports whether x[i] == x[mirror(i)] within tol, where mirror
// reflects positions about the array center.
func Symmetric(x []float64, tol float64) bool {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		if math.Abs(x[i]-x[j]) > tol {
			return false
		}
	}
	return true
}

// Antisymmetric reports whether x[i] == -x[mirror(i)] within tol. The center
// element of an odd-length slice must be zero within tol.
func Antisymmetric(x []float64, tol float64) bool {
	for i, j := 0, len(x)-1; i <= j; i, j = i+1, j-1 {
		if math.Abs(x[i]+x[j]) > tol {
			return false
		}
	}
	return true
}
