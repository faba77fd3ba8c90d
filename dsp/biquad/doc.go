// Package biquad provides single-precision biquad (second-order IIR) filter
// runtime primitives for block-streamed signals.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Cascade] for higher-order filters. Delay-line state persists
// across blocks, so a stream split into consecutive blocks filters exactly
// like the unbroken sequence.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/design.
package biquad
