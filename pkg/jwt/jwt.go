package jwt

import (
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueOption customizes the claims of a token being issued.
type IssueOption func(*Claims)

// WithOrganization adds an organization identifier to the issued claims.
func WithOrganization(org int32) IssueOption {
	return func(c *Claims) {
		c.Organization = org
	}
}

// Issue creates a signed HS256 compact token for the given subject. The
// expiration is computed as the current UTC time plus ttl, truncated to whole
// seconds, and is returned alongside the token so callers can persist it
// without re-decoding. The issuer string is an opaque correlation label: a
// fixed service name or a per-session UUID (see NewSessionID).
//
// Signing is expected to succeed for well-formed inputs; a failure wraps
// ErrSigningFailed and should be treated as a configuration error.
func Issue(subject int32, secret string, ttl time.Duration, issuer, audience string, opts ...IssueOption) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(ttl).Truncate(time.Second)

	claims := Claims{
		Subject:   subject,
		ExpiresAt: expiresAt.Unix(),
		Issuer:    issuer,
		Audience:  audience,
	}
	for _, opt := range opts {
		opt(&claims)
	}

	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}

	return token, expiresAt, nil
}

// NewSessionID returns a random UUID suitable as the issuer correlation
// string for session-scoped tokens.
func NewSessionID() string {
	return uuid.NewString()
}

// Validate decodes the token, verifies the HMAC-SHA256 signature against
// secret, checks that the expiration has not elapsed (no clock-skew leeway),
// and requires the audience claim to equal audience exactly. This is the only
// path that may back authorization decisions.
//
// Every failure is reported as ErrTokenInvalid regardless of cause so callers
// cannot distinguish an expired token from a forged one.
func Validate(token, secret, audience string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwtv5.ParseWithClaims(token, claims, func(t *jwtv5.Token) (any, error) {
		if t.Method != jwtv5.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	},
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Audience != audience {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
