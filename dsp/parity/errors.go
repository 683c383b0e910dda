package parity

import "errors"

var (
	// ErrEmptyInput reports a decomposition request without samples.
	ErrEmptyInput = errors.New("parity: input must not be empty")
	// ErrLengthMismatch reports samples and indices of different lengths.
	ErrLengthMismatch = errors.New("parity: samples and indices must have same length")
	// ErrIndexOrder reports indices that are not strictly ascending.
	ErrIndexOrder = errors.New("parity: indices must be strictly ascending")
	// ErrIndexRange reports an index outside the symmetric extended range.
	ErrIndexRange = errors.New("parity: index outside extended range")
)
