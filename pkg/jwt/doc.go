// Package jwt provides HMAC-SHA256 access-token issuance, validation, and
// unverified claim extraction for the Next Era service ecosystem.
//
// Tokens use the standard compact serialization (three dot-separated
// base64url segments) and are byte-compatible with any conformant verifier.
// The signing secret is supplied per call; this package does not generate,
// store, or rotate key material.
//
// # Issuing Tokens
//
//	token, expiresAt, err := jwt.Issue(userID, secret, 24*time.Hour, jwt.NewSessionID(), "NEXTERA USER")
//	if err != nil {
//		// Unusable key or environment; treat as fatal configuration error.
//	}
//	// Persist expiresAt alongside the token if needed; no re-decode required.
//
// Attach an organization identifier with a functional option:
//
//	token, _, err := jwt.Issue(userID, secret, ttl, issuer, audience, jwt.WithOrganization(orgID))
//
// # Validating Tokens
//
// Validate is the only operation that may back authorization decisions. It
// verifies the signature, the expiration (no clock-skew leeway), and that the
// audience claim equals the expected audience exactly:
//
//	claims, err := jwt.Validate(token, secret, "NEXTERA USER")
//	if err != nil {
//		// Always ErrTokenInvalid: bad signature, expired, and audience
//		// mismatch are deliberately indistinguishable.
//	}
//
// # Unverified Extraction
//
// ExtractClaims and ExtractSubject decode the payload segment without
// checking the signature, expiry, or audience. They return the distinct
// UnverifiedClaims type so the result cannot be confused with validated
// claims at a call site. Use them only where the token's origin is already
// trusted: telemetry, logging, or diagnostic inspection of expired tokens.
//
//	sub, err := jwt.ExtractSubject(token) // no signature check!
//
// # Error Handling
//
// All failures are sentinel errors checked with errors.Is:
//   - ErrTokenInvalid: any validation failure (never distinguishes cause)
//   - ErrMalformedToken: extraction failed on structure, base64, or JSON
//   - ErrSigningFailed: issuance-time signing failure (configuration error)
//
// # Security Notes
//
// Use a secret of at least 32 bytes generated from a cryptographically
// secure source. Keep token lifetimes short; this library maintains no
// revocation list.
package jwt
