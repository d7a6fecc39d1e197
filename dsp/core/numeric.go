package core

import "math"

const defaultEpsilon = 1e-12

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

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
// Values below 1 map to 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// RoundHalfUp rounds x to the nearest integer with ties toward +Inf,
// i.e. floor(x + 0.5). This differs from math.Round for negative ties.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// ClampByte rounds x half-up and saturates it to the uint8 range.
func ClampByte(x float64) byte {
	if math.IsNaN(x) {
		return 0
	}

	return byte(Clamp(RoundHalfUp(x), 0, math.MaxUint8))
}
