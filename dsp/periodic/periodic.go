package periodic

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-primer/dsp/core"
)

const (
	defaultMaxPeriod = 100
	defaultTolerance = 1e-10
)

// Checker searches for the fundamental period of e^(j*omega*n).
//
// The sequence is periodic with period N exactly when omega*N is an integer
// multiple of 2*pi, i.e. when omega is a rational multiple of 2*pi. The
// search is bounded: a true period above the configured maximum is reported
// as not periodic. That is an approximation of the bounded search, not a
// claim that the sequence is aperiodic.
type Checker struct {
	maxPeriod int
	tolerance float64
}

// Option configures a Checker.
type Option func(*Checker)

// WithMaxPeriod sets the inclusive upper bound of the period search.
func WithMaxPeriod(n int) Option {
	return func(c *Checker) {
		c.maxPeriod = n
	}
}

// WithTolerance sets the distance from an integer at which omega*N/(2*pi)
// counts as integral.
func WithTolerance(tol float64) Option {
	return func(c *Checker) {
		c.tolerance = tol
	}
}

// NewChecker creates a period checker, validating the configuration.
func NewChecker(opts ...Option) (*Checker, error) {
	c := &Checker{
		maxPeriod: defaultMaxPeriod,
		tolerance: defaultTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.maxPeriod <= 0 {
		return nil, fmt.Errorf("period search bound must be > 0: %d", c.maxPeriod)
	}
	if c.tolerance <= 0 {
		return nil, fmt.Errorf("period tolerance must be > 0: %g", c.tolerance)
	}
	return c, nil
}

// MaxPeriod returns the inclusive search bound.
func (c *Checker) MaxPeriod() int {
	return c.maxPeriod
}

// FundamentalPeriod returns the smallest period N within the search bound
// for which e^(j*omega*N) = 1, and whether such an N exists.
//
// Candidates are scanned in ascending order, so the first hit is the
// fundamental period. omega = 0 yields period 1.
func (c *Checker) FundamentalPeriod(omega float64) (int, bool) {
	for n := 1; n <= c.maxPeriod; n++ {
		k := omega * float64(n) / core.TwoPi
		if _, dist := core.NearestInteger(k); dist < c.tolerance {
			return n, true
		}
	}
	return 0, false
}

// FundamentalPeriod is a one-shot period search with the default tolerance.
func FundamentalPeriod(omega float64, maxPeriod int) (int, bool, error) {
	c, err := NewChecker(WithMaxPeriod(maxPeriod))
	if err != nil {
		return 0, false, err
	}
	period, ok := c.FundamentalPeriod(omega)
	return period, ok, nil
}
