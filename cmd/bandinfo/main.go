// Command bandinfo prints the designed coefficients and magnitude response
// of a conditioning band.
//
// Usage:
//
//	bandinfo [flags]
//
// Examples:
//
//	bandinfo
//	bandinfo -rate 500 -low 1 -high 30 -order 3
//	bandinfo -points 32 -measure
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-condition/condition"
	"github.com/cwbudde/algo-condition/dsp/biquad"
	"github.com/cwbudde/algo-condition/measure/response"
)

func main() {
	rate := flag.Float64("rate", 250, "sample rate in Hz")
	low := flag.Float64("low", 0.5, "lower band edge in Hz")
	high := flag.Float64("high", 40, "upper band edge in Hz")
	order := flag.Int("order", 2, "Butterworth order per band edge")
	points := flag.Int("points", 16, "number of response table rows")
	measured := flag.Bool("measure", false, "include FFT-measured response next to the analytic one")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bandinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the coefficients and magnitude response of a conditioning band.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	c, err := condition.New(
		condition.WithSampleRate(*rate),
		condition.WithBand(*low, *high),
		condition.WithOrder(*order),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("band %g-%g Hz, order %d per edge, sample rate %g Hz\n\n", *low, *high, *order, *rate)

	printCoefficients(c.Coefficients())

	var m *response.Measurement
	if *measured {
		m, err = response.Measure(biquad.NewCascade(c.Coefficients()), 8192, *rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	printResponse(c, m, *low, *rate, *points)
}

func printCoefficients(coeffs []biquad.Coefficients) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "section\tB0\tB1\tB2\tA1\tA2")
	for i, c := range coeffs {
		fmt.Fprintf(w, "%d\t%.8g\t%.8g\t%.8g\t%.8g\t%.8g\n", i, c.B0, c.B1, c.B2, c.A1, c.A2)
	}
	w.Flush()
	fmt.Println()
}

func printResponse(c *condition.Conditioner, m *response.Measurement, low, rate float64, points int) {
	if points < 2 {
		points = 2
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if m != nil {
		fmt.Fprintln(w, "freq (Hz)\tanalytic (dB)\tmeasured (dB)")
	} else {
		fmt.Fprintln(w, "freq (Hz)\tmagnitude (dB)")
	}

	// Log-spaced rows from a decade below the band to Nyquist.
	from := low / 10
	to := rate / 2 * 0.999
	for i := 0; i < points; i++ {
		t := float64(i) / float64(points-1)
		freq := from * math.Pow(to/from, t)

		if m != nil {
			fmt.Fprintf(w, "%.3g\t%+.2f\t%+.2f\n",
				freq, c.MagnitudeDB(freq), 20*math.Log10(m.MagnitudeAt(freq)))
		} else {
			fmt.Fprintf(w, "%.3g\t%+.2f\n", freq, c.MagnitudeDB(freq))
		}
	}
	w.Flush()
}
