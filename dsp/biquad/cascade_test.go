package biquad

import "testing"

func cascadeCoefficients() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.3, B1: -0.6, B2: 0.3, A1: 0.1, A2: 0.02},
	}
}

func TestNewCascade(t *testing.T) {
	coeffs := cascadeCoefficients()
	c := NewCascade(coeffs)

	if c.NumSections() != 2 {
		t.Fatalf("sections=%d, want 2", c.NumSections())
	}
	if c.Order() != 4 {
		t.Fatalf("order=%d, want 4", c.Order())
	}
	for i, want := range coeffs {
		if got := c.Section(i).Coefficients; got != want {
			t.Fatalf("section %d coefficients: got %v, want %v", i, got, want)
		}
	}
}

func TestCascade_ProcessSampleMatchesManual(t *testing.T) {
	coeffs := cascadeCoefficients()
	c := NewCascade(coeffs)

	s0 := NewSection(coeffs[0])
	s1 := NewSection(coeffs[1])

	for i, x := range testSignal(32) {
		want := s1.ProcessSample(s0.ProcessSample(x))
		got := c.ProcessSample(x)
		if got != want {
			t.Fatalf("sample %d: cascade=%v, manual=%v", i, got, want)
		}
	}
}

func TestCascade_ProcessBlockMatchesSample(t *testing.T) {
	input := testSignal(129)

	ref := NewCascade(cascadeCoefficients())
	want := make([]float32, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	c := NewCascade(cascadeCoefficients())
	block := make([]float32, len(input))
	copy(block, input)
	c.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], want[i], eps) {
			t.Fatalf("sample %d: block=%.8f, sample=%.8f", i, block[i], want[i])
		}
	}
}

func TestCascade_ProcessBlockTo_Aliasing(t *testing.T) {
	input := testSignal(96)

	c1 := NewCascade(cascadeCoefficients())
	ref := make([]float32, len(input))
	c1.ProcessBlockTo(ref, input)

	c2 := NewCascade(cascadeCoefficients())
	buf := make([]float32, len(input))
	copy(buf, input)
	c2.ProcessBlockTo(buf, buf)

	for i := range buf {
		if !almostEqual(buf[i], ref[i], eps) {
			t.Fatalf("sample %d: aliased=%.8f, separate=%.8f", i, buf[i], ref[i])
		}
	}
}

func TestCascade_Empty(t *testing.T) {
	c := NewCascade(nil)

	src := testSignal(8)
	dst := make([]float32, len(src))
	c.ProcessBlockTo(dst, src)

	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("sample %d: empty cascade changed data: %v vs %v", i, dst[i], src[i])
		}
	}
}

func TestCascade_BlockSplitContinuity(t *testing.T) {
	input := testSignal(512)

	whole := NewCascade(cascadeCoefficients())
	ref := make([]float32, len(input))
	whole.ProcessBlockTo(ref, input)

	split := NewCascade(cascadeCoefficients())
	got := make([]float32, len(input))
	const blockSize = 64
	for off := 0; off < len(input); off += blockSize {
		split.ProcessBlockTo(got[off:off+blockSize], input[off:off+blockSize])
	}

	for i := range got {
		if !almostEqual(got[i], ref[i], eps) {
			t.Fatalf("sample %d: split=%.8f, whole=%.8f", i, got[i], ref[i])
		}
	}
}

func TestCascade_StateSnapshotRestore(t *testing.T) {
	c := NewCascade(cascadeCoefficients())
	c.ProcessBlock(testSignal(40))
	saved := c.State()

	if len(saved) != c.NumSections() {
		t.Fatalf("state len=%d, want %d", len(saved), c.NumSections())
	}

	next := c.ProcessSample(0.5)

	c.SetState(saved)
	replay := c.ProcessSample(0.5)

	if next != replay {
		t.Fatalf("replayed sample differs: %v vs %v", next, replay)
	}
}

func TestCascade_Reset(t *testing.T) {
	c := NewCascade(cascadeCoefficients())
	c.ProcessBlock(testSignal(16))

	c.Reset()
	for i, st := range c.State() {
		if st != [2]float32{0, 0} {
			t.Fatalf("section %d state not cleared: %v", i, st)
		}
	}
}

func TestCascade_CoefficientsCopy(t *testing.T) {
	c := NewCascade(cascadeCoefficients())

	coeffs := c.Coefficients()
	coeffs[0].B0 = 99

	if c.Section(0).B0 == 99 {
		t.Fatal("Coefficients() exposed internal storage")
	}
}
