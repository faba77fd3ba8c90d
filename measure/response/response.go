// Package response measures the realized magnitude response of a block
// filter by driving it with a unit impulse and transforming the observed
// impulse response. Unlike the analytic response helpers in dsp/biquad,
// the measurement exercises the actual single-precision processing path,
// so coefficient quantization and state handling are part of the result.
package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// BlockFilter is the minimal processing surface a measurement needs.
// dsp/biquad's Section and Cascade both satisfy it.
type BlockFilter interface {
	ProcessBlockTo(dst, src []float32)
	Reset()
}

// ErrInvalidSize reports a non-positive or non-power-of-two FFT size.
var ErrInvalidSize = errors.New("response: fft size must be a positive power of two")

// Measurement holds the magnitude response of a filter over the
// non-negative frequency bins [0 .. Nyquist].
type Measurement struct {
	// Magnitude holds linear |H| per bin, len fftSize/2+1.
	Magnitude []float64

	// SampleRate is the rate the bin frequencies refer to.
	SampleRate float64

	fftSize int
}

// Bins returns the number of measured frequency bins.
func (m *Measurement) Bins() int {
	return len(m.Magnitude)
}

// BinFrequency returns the center frequency in Hz of bin i.
func (m *Measurement) BinFrequency(i int) float64 {
	return m.SampleRate * float64(i) / float64(m.fftSize)
}

// Measure captures fftSize samples of the filter's impulse response and
// returns its magnitude spectrum. The filter is Reset before and after the
// measurement, so an active stream's state is not observed but is lost;
// measure on a dedicated instance when a stream must keep running.
func Measure(f BlockFilter, fftSize int, sampleRate float64) (*Measurement, error) {
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, fftSize)
	}

	f.Reset()

	impulse := make([]float32, fftSize)
	impulse[0] = 1

	ir := make([]float32, fftSize)
	f.ProcessBlockTo(ir, impulse)
	f.Reset()

	inData := make([]complex128, fftSize)
	for i, v := range ir {
		inData[i] = complex(float64(v), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return &Measurement{
		Magnitude:  mag,
		SampleRate: sampleRate,
		fftSize:    fftSize,
	}, nil
}

// MagnitudeAt returns the measured linear magnitude at the bin closest to
// freqHz.
func (m *Measurement) MagnitudeAt(freqHz float64) float64 {
	if len(m.Magnitude) == 0 {
		return 0
	}

	bin := int(freqHz/m.SampleRate*float64(m.fftSize) + 0.5)
	if bin < 0 {
		bin = 0
	}
	if bin >= len(m.Magnitude) {
		bin = len(m.Magnitude) - 1
	}

	return m.Magnitude[bin]
}
