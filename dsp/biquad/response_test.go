package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponse_Passthrough(t *testing.T) {
	c := passthrough()
	for _, f := range []float64{0, 100, 1000, 10000} {
		h := c.Response(f, 48000)
		if math.Abs(cmplx.Abs(h)-1) > 1e-12 {
			t.Errorf("f=%v: |H|=%v, want 1", f, cmplx.Abs(h))
		}
	}
}

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := testCoefficients()
	for _, f := range []float64{10, 100, 1000, 5000, 20000} {
		want := cmplx.Abs(c.Response(f, 48000))
		got := math.Sqrt(c.MagnitudeSquared(f, 48000))
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("f=%v: closed-form=%v, complex=%v", f, got, want)
		}
	}
}

func TestMagnitudeDB_Passthrough(t *testing.T) {
	c := passthrough()
	if db := c.MagnitudeDB(1000, 48000); math.Abs(db) > 1e-9 {
		t.Fatalf("passthrough magnitude = %v dB, want 0", db)
	}
}

func TestCascadeResponse_ProductOfSections(t *testing.T) {
	coeffs := cascadeCoefficients()
	c := NewCascade(coeffs)

	for _, f := range []float64{50, 500, 5000} {
		want := coeffs[0].Response(f, 48000) * coeffs[1].Response(f, 48000)
		got := c.Response(f, 48000)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: cascade=%v, product=%v", f, got, want)
		}
	}
}

func TestCascadeMagnitudeDB_EmptyIsUnity(t *testing.T) {
	c := NewCascade(nil)
	if db := c.MagnitudeDB(1000, 48000); math.Abs(db) > 1e-12 {
		t.Fatalf("empty cascade magnitude = %v dB, want 0", db)
	}
}
