// Package design computes biquad coefficients for the band-limiting filters
// used by the conditioning front end.
//
// Design math runs in float64 and happens once, off the processing path; the
// resulting coefficients are quantized to float32 for the [biquad] runtime.
// All entry points validate their parameters and return an error instead of
// producing an unstable or degenerate filter.
package design
