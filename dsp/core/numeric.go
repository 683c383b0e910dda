package core

import "math"

const defaultEpsilon = 1e-12

// TwoPi is the period of the complex exponential in radians.
const TwoPi = 2 * math.Pi

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NearestInteger returns the integer closest to x and the distance to it.
func NearestInteger(x float64) (int, float64) {
	r := math.Round(x)
	return int(r), math.Abs(x - r)
}
