// Package core provides shared numeric and buffer helpers for
// single-precision streaming DSP.
package core

import "math"

const defaultEpsilon = 1e-6

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float32, n int) []float32 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float32, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float32) {
	for i := range buf {
		buf[i] = 0
	}
}

// NearlyEqual reports whether a and b are equal within eps.
// With eps <= 0 a default single-precision tolerance is used.
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

// FlushDenormal converts tiny denormal-like values to exact zero.
// Denormal filter state causes large slowdowns on many FPUs once a
// decaying IIR response falls below the normal float32 range.
func FlushDenormal(x float32) float32 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}
