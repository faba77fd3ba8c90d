package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-condition/dsp/biquad"
	"github.com/cwbudde/algo-condition/dsp/design"
)

func testBand(t *testing.T) *biquad.Cascade {
	t.Helper()
	sections, err := design.Bandpass(0.5, 40, 2, 250)
	if err != nil {
		t.Fatal(err)
	}
	return biquad.NewCascade(sections)
}

func TestMeasure_MatchesAnalyticResponse(t *testing.T) {
	c := testBand(t)

	m, err := Measure(c, 8192, 250)
	if err != nil {
		t.Fatal(err)
	}

	// Mid-band bins where the response is flat enough that bin rounding
	// does not matter.
	for _, freq := range []float64{5, 10, 20} {
		got := 20 * math.Log10(m.MagnitudeAt(freq))
		want := c.MagnitudeDB(freq, 250)
		if math.Abs(got-want) > 0.1 {
			t.Errorf("%v Hz: measured %.3f dB, analytic %.3f dB", freq, got, want)
		}
	}

	// Rejection region: both agree the signal is strongly attenuated.
	if got := 20 * math.Log10(m.MagnitudeAt(110)); got > -20 {
		t.Errorf("110 Hz: measured %.1f dB, want strong rejection", got)
	}
}

func TestMeasure_PassthroughSection(t *testing.T) {
	s := biquad.NewSection(biquad.Coefficients{B0: 1})

	m, err := Measure(s, 256, 48000)
	if err != nil {
		t.Fatal(err)
	}

	for i, mag := range m.Magnitude {
		if math.Abs(mag-1) > 1e-6 {
			t.Fatalf("bin %d: |H|=%v, want 1", i, mag)
		}
	}
}

func TestMeasure_ResetsFilterState(t *testing.T) {
	c := testBand(t)

	// Dirty the state, then measure.
	buf := make([]float32, 64)
	for i := range buf {
		buf[i] = 1
	}
	c.ProcessBlockTo(buf, buf)

	if _, err := Measure(c, 1024, 250); err != nil {
		t.Fatal(err)
	}

	for i, st := range c.State() {
		if st != [2]float32{0, 0} {
			t.Fatalf("section %d state not reset after measurement: %v", i, st)
		}
	}
}

func TestMeasure_InvalidSize(t *testing.T) {
	c := testBand(t)

	for _, size := range []int{0, -8, 3, 100} {
		if _, err := Measure(c, size, 250); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d: err=%v, want ErrInvalidSize", size, err)
		}
	}
}

func TestMeasurement_Bins(t *testing.T) {
	c := testBand(t)

	m, err := Measure(c, 1024, 250)
	if err != nil {
		t.Fatal(err)
	}

	if m.Bins() != 513 {
		t.Fatalf("Bins=%d, want 513", m.Bins())
	}
	if f := m.BinFrequency(0); f != 0 {
		t.Fatalf("BinFrequency(0)=%v, want 0", f)
	}
	if f := m.BinFrequency(512); math.Abs(f-125) > 1e-9 {
		t.Fatalf("BinFrequency(512)=%v, want 125", f)
	}
}
