package dft

import "errors"

// Errors returned by transform functions and plans.
var (
	// ErrInvalidLength reports a length outside an algorithm's domain:
	// odd for Split, not a power of two for Recursive, or negative for
	// plan construction. Lengths are never silently padded or truncated
	// to fit; that would change the sequence's meaning.
	ErrInvalidLength = errors.New("dft: invalid transform length")

	// ErrNilSlice reports a nil destination or source buffer.
	ErrNilSlice = errors.New("dft: nil slice")

	// ErrLengthMismatch reports buffers whose length differs from the
	// plan's transform length.
	ErrLengthMismatch = errors.New("dft: buffer length mismatch")

	// ErrUnknownAlgorithm reports an Algorithm value outside the defined
	// constants.
	ErrUnknownAlgorithm = errors.New("dft: unknown algorithm")
)
