// Package condition implements the signal-conditioning front end of a
// block-streamed sensing pipeline: per-block standardization (zero mean,
// unit standard deviation) followed by a band-limiting filter whose state
// carries across block boundaries.
//
// A [Conditioner] owns the filter coefficients and delay-line state for one
// logical sample stream. Construct it once with [New], then feed consecutive
// blocks through [Conditioner.Process] (or [Conditioner.Standardize] and
// [Conditioner.Bandpass] separately). Splitting a stream into blocks is
// transparent: filtering N consecutive blocks equals filtering the
// concatenated sequence.
//
// Processing is synchronous and allocation-free. A Conditioner is not safe
// for concurrent use; give each stream its own instance, or serialize calls
// externally.
package condition
