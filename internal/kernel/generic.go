package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

func init() {
	Global.Register(OpEntry{
		Name:         "scalar",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: processBlockScalar,
	})
	Global.Register(OpEntry{
		Name:         "unrolled2",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     10,
		ProcessBlock: processBlockUnrolled2,
	})
}

// processBlockScalar is the portable reference kernel: Direct Form II
// Transposed, one sample at a time.
func processBlockScalar(c Coefficients, d0, d1 float32, buf []float32) (newD0, newD1 float32) {
	for i, x := range buf {
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		buf[i] = y
	}

	return d0, d1
}

// processBlockUnrolled2 is a 2x-unrolled scalar kernel that reduces loop
// overhead and improves ILP. The per-sample arithmetic order is identical to
// processBlockScalar, so results match bit for bit.
func processBlockUnrolled2(c Coefficients, d0, d1 float32, buf []float32) (newD0, newD1 float32) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0

	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
