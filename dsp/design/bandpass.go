package design

import (
	"math"

	"github.com/cwbudde/algo-condition/dsp/biquad"
)

// Bandpass designs a Butterworth bandpass cascade passing [lowHz, highHz].
//
// The band is realized as a highpass at lowHz followed by a lowpass at
// highHz, each of the given order, which suits the wide, low-Q bands typical
// of sensor conditioning. The edge attenuation is the Butterworth -3 dB point
// per edge filter. Requires 0 < lowHz < highHz < sampleRate/2 and order >= 1.
func Bandpass(lowHz, highHz float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if lowHz >= highHz {
		return nil, ErrInvalidParams
	}

	hp, err := ButterworthHP(lowHz, order, sampleRate)
	if err != nil {
		return nil, err
	}

	lp, err := ButterworthLP(highHz, order, sampleRate)
	if err != nil {
		return nil, err
	}

	return append(hp, lp...), nil
}

// BandpassRBJ designs a single constant-peak-gain bandpass biquad centered
// at centerHz. Peak gain at the center is 0 dB regardless of q. Narrow bands
// (high q) are better served by this topology than by the edge cascade of
// [Bandpass].
func BandpassRBJ(centerHz, q, sampleRate float64) (biquad.Coefficients, error) {
	w0, ok := normalizedW0(centerHz, sampleRate)
	if !ok {
		return biquad.Coefficients{}, ErrInvalidParams
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return quantize(b0, b1, b2, a0, a1, a2), nil
}
