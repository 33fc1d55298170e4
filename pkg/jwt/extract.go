package jwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// tokenSegments is the number of dot-separated segments in a compact token
// (header.payload.signature).
const tokenSegments = 3

// ExtractClaims decodes the payload segment of a compact token WITHOUT
// verifying the signature, expiration, or audience. It splits the token into
// its three segments, restores the base64url padding the compact form omits,
// and JSON-decodes the payload.
//
// The result is intentionally typed UnverifiedClaims: this path exists for
// telemetry and diagnostics on tokens whose origin the caller already trusts
// (e.g. reading the subject from a token validated upstream, or inspecting an
// expired token). It must never gate authorization — use Validate for that.
func ExtractClaims(token string) (*UnverifiedClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != tokenSegments {
		return nil, fmt.Errorf("expected %d segments, got %d: %w", tokenSegments, len(parts), ErrMalformedToken)
	}

	payload, err := base64.URLEncoding.DecodeString(padBase64(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", ErrMalformedToken)
	}

	var claims UnverifiedClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal claims: %w", ErrMalformedToken)
	}

	return &claims, nil
}

// ExtractSubject returns the subject identifier from the token payload
// WITHOUT any verification. See ExtractClaims for the trust caveats.
func ExtractSubject(token string) (int32, error) {
	claims, err := ExtractClaims(token)
	if err != nil {
		return 0, err
	}
	return claims.Subject, nil
}

// padBase64 restores the trailing '=' padding that compact serialization
// strips, so the segment decodes with the standard padded base64url codec.
// Depends only on input length, never on content.
func padBase64(s string) string {
	if rem := len(s) % 4; rem != 0 {
		return s + strings.Repeat("=", 4-rem)
	}
	return s
}
