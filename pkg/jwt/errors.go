package jwt

import "errors"

// Package-level error definitions for token operations.
var (
	// ErrMalformedToken indicates the token does not have the expected
	// three-segment compact structure, or a segment contains invalid
	// base64url or JSON.
	ErrMalformedToken = errors.New("malformed token")

	// ErrTokenInvalid indicates the token failed verification. The reason
	// (bad signature, expired, audience mismatch) is deliberately not
	// distinguished so callers cannot leak an expired-vs-forged oracle.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSigningFailed indicates token serialization or signing failed at
	// issuance time. This points at an unusable key or environment and
	// should be treated as a configuration error, not a routine failure.
	ErrSigningFailed = errors.New("token signing failed")
)
