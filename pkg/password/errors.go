package password

import "errors"

// Package-level error definitions for password operations.
var (
	// ErrHashingFailed indicates the underlying hashing primitive failed,
	// e.g. an exhausted randomness source. Treat as a configuration error.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrInvalidHashFormat indicates a stored hash record is structurally
	// malformed or belongs to a different algorithm family than requested.
	ErrInvalidHashFormat = errors.New("invalid hash format")

	// ErrUnsupportedAlgorithm indicates an Algorithm value outside the
	// supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported hashing algorithm")
)
