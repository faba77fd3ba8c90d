package condition

import "errors"

var (
	// ErrNotInitialized reports a processing call on a Conditioner that was
	// not built by New.
	ErrNotInitialized = errors.New("condition: not initialized")

	// ErrEmptyBlock reports a zero-length block. Output buffers are left
	// untouched.
	ErrEmptyBlock = errors.New("condition: empty block")

	// ErrBlockSize reports a block whose length does not match the output
	// buffer or the configured fixed block size. Output buffers are left
	// untouched.
	ErrBlockSize = errors.New("condition: block size mismatch")
)
