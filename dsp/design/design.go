package design

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-condition/dsp/biquad"
)

// ErrInvalidParams reports a design request outside the valid range
// (non-positive rates, edges at or beyond Nyquist, bad order).
var ErrInvalidParams = errors.New("design: invalid parameters")

const defaultQ = 1 / math.Sqrt2

// normalizedW0 returns the angular frequency 2*pi*freq/sampleRate and whether
// the pair is usable (0 < freq < Nyquist).
func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 {
		return defaultQ
	}

	return q
}

// quantize normalizes a float64 biquad by a0 and narrows it to the
// single-precision runtime representation.
func quantize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	inv := 1 / a0

	return biquad.Coefficients{
		B0: float32(b0 * inv),
		B1: float32(b1 * inv),
		B2: float32(b2 * inv),
		A1: float32(a1 * inv),
		A2: float32(a2 * inv),
	}
}
