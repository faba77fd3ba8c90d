package condition

import (
	"fmt"

	"github.com/cwbudde/algo-condition/dsp/biquad"
	"github.com/cwbudde/algo-condition/dsp/core"
	"github.com/cwbudde/algo-condition/dsp/design"
	"github.com/cwbudde/algo-condition/stats/block"
)

// Conditioner standardizes and band-limits consecutive sample blocks of one
// logical stream. Coefficients are immutable after New; the filter delay
// lines mutate on every Bandpass/Process call.
type Conditioner struct {
	cfg  Config
	band *biquad.Cascade
}

// New builds a Conditioner from the default config modified by opts,
// designing the band-limiting cascade and zeroing its state. Construction
// fails if the configured band cannot be designed at the configured sample
// rate. Identical options always yield identical coefficients.
func New(opts ...Option) (*Conditioner, error) {
	cfg := ApplyOptions(opts...)

	if cfg.BlockSize < 0 {
		return nil, fmt.Errorf("%w: negative configured size %d", ErrBlockSize, cfg.BlockSize)
	}

	sections, err := design.Bandpass(cfg.LowHz, cfg.HighHz, cfg.Order, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("condition: bandpass design %g-%g Hz at %g Hz: %w",
			cfg.LowHz, cfg.HighHz, cfg.SampleRate, err)
	}

	return &Conditioner{
		cfg:  cfg,
		band: biquad.NewCascade(sections),
	}, nil
}

// checkBlocks validates a dst/src pair against the handle and its config.
// On error the output buffer has not been written.
func (c *Conditioner) checkBlocks(dst, src []float32) error {
	if c == nil || c.band == nil {
		return ErrNotInitialized
	}

	if len(src) == 0 {
		return ErrEmptyBlock
	}

	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst=%d src=%d", ErrBlockSize, len(dst), len(src))
	}

	if c.cfg.BlockSize > 0 && len(src) != c.cfg.BlockSize {
		return fmt.Errorf("%w: got %d, configured %d", ErrBlockSize, len(src), c.cfg.BlockSize)
	}

	return nil
}

// Standardize rescales src to zero mean and unit standard deviation into
// dst. dst may alias src. Degenerate blocks (constant value, or a standard
// deviation that underflows to zero) standardize to the all-zero block with
// a nil error; the output is never NaN or Inf.
func (c *Conditioner) Standardize(dst, src []float32) error {
	if err := c.checkBlocks(dst, src); err != nil {
		return err
	}

	standardize(dst, src)

	return nil
}

func standardize(dst, src []float32) {
	mean, std := block.MeanStdDev(src)

	minVal, maxVal := block.MinMax(src)
	if std == 0 || minVal == maxVal {
		core.Zero(dst)
		return
	}

	inv := 1 / std
	for i, x := range src {
		dst[i] = (x - mean) * inv
	}
}

// Bandpass filters src into dst through the band-limiting cascade, updating
// the delay-line state in place so consecutive calls behave as one unbroken
// stream. dst may alias src. Per-sample processing is strictly sequential.
func (c *Conditioner) Bandpass(dst, src []float32) error {
	if err := c.checkBlocks(dst, src); err != nil {
		return err
	}

	c.band.ProcessBlockTo(dst, src)
	c.band.FlushDenormals()

	return nil
}

// Process runs the full conditioning chain on one block: standardize, then
// bandpass. dst may alias src.
func (c *Conditioner) Process(dst, src []float32) error {
	if err := c.checkBlocks(dst, src); err != nil {
		return err
	}

	standardize(dst, src)
	c.band.ProcessBlock(dst)
	c.band.FlushDenormals()

	return nil
}

// Reset zeroes the filter state without redesigning coefficients, restarting
// the stream on the same handle.
func (c *Conditioner) Reset() {
	if c == nil || c.band == nil {
		return
	}

	c.band.Reset()
}

// Config returns the configuration the handle was built with.
func (c *Conditioner) Config() Config {
	return c.cfg
}

// NumSections returns the number of biquad sections in the cascade.
func (c *Conditioner) NumSections() int {
	if c == nil || c.band == nil {
		return 0
	}

	return c.band.NumSections()
}

// Coefficients returns a copy of the designed cascade coefficients.
func (c *Conditioner) Coefficients() []biquad.Coefficients {
	if c == nil || c.band == nil {
		return nil
	}

	return c.band.Coefficients()
}

// State returns a snapshot of the cascade delay-line state, one [d0, d1]
// pair per section.
func (c *Conditioner) State() [][2]float32 {
	if c == nil || c.band == nil {
		return nil
	}

	return c.band.State()
}

// MagnitudeDB returns the designed band's magnitude response in dB at the
// given frequency.
func (c *Conditioner) MagnitudeDB(freqHz float64) float64 {
	return c.band.MagnitudeDB(freqHz, c.cfg.SampleRate)
}
