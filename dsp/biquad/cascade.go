package biquad

// Cascade is an ordered series of biquad sections. It is used for
// higher-order filters where each second-order section feeds the next.
type Cascade struct {
	sections []Section
}

// NewCascade creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section with zero state.
func NewCascade(coeffs []Coefficients) *Cascade {
	c := &Cascade{
		sections: make([]Section, len(coeffs)),
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades one input sample through all sections in order.
func (c *Cascade) ProcessSample(x float32) float32 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float32) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst through the full cascade.
// Both slices must have the same length; dst may alias src.
func (c *Cascade) ProcessBlockTo(dst, src []float32) {
	if len(c.sections) == 0 {
		copy(dst, src)
		return
	}

	c.sections[0].ProcessBlockTo(dst, src)
	for i := 1; i < len(c.sections); i++ {
		c.sections[i].ProcessBlock(dst)
	}
}

// Reset clears all section states.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// FlushDenormals flushes denormal-range state in every section.
func (c *Cascade) FlushDenormals() {
	for i := range c.sections {
		c.sections[i].FlushDenormals()
	}
}

// Order returns the total filter order (2 per full biquad section).
func (c *Cascade) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// Coefficients returns a copy of all section coefficients in cascade order.
func (c *Cascade) Coefficients() []Coefficients {
	coeffs := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		coeffs[i] = c.sections[i].Coefficients
	}

	return coeffs
}

// State returns a snapshot of all section delay-line states.
func (c *Cascade) State() [][2]float32 {
	states := make([][2]float32, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Cascade) SetState(states [][2]float32) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
