package jwt

import (
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Claims is the verified payload of an access token. Instances are produced
// by Issue and returned by Validate after the signature, expiry, and audience
// have been checked. Treat them as immutable.
type Claims struct {
	// Subject is the authenticated user identifier.
	Subject int32 `json:"sub"`

	// Organization is the optional organization identifier the subject is
	// acting under. Zero means no organization claim.
	Organization int32 `json:"org,omitempty"`

	// ExpiresAt is the expiration instant in seconds since the UNIX epoch,
	// always interpreted as UTC.
	ExpiresAt int64 `json:"exp"`

	// Issuer correlates the token with its origin: either a fixed issuer
	// name or a per-session UUID (see NewSessionID).
	Issuer string `json:"iss"`

	// Audience identifies the service the token is intended for.
	Audience string `json:"aud"`
}

// UnverifiedClaims carries the same fields as Claims but is returned only by
// the extraction path that performs NO signature, expiry, or audience checks.
// The distinct type exists so unverified data can never be passed where
// verified *Claims are expected. Never use it for authorization decisions.
type UnverifiedClaims struct {
	Subject      int32  `json:"sub"`
	Organization int32  `json:"org,omitempty"`
	ExpiresAt    int64  `json:"exp"`
	Issuer       string `json:"iss"`
	Audience     string `json:"aud"`
}

// The jwtv5.Claims interface implementation below lets Claims flow through
// the library's parser and validator directly.

func (c Claims) GetExpirationTime() (*jwtv5.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwtv5.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwtv5.NumericDate, error)  { return nil, nil }
func (c Claims) GetNotBefore() (*jwtv5.NumericDate, error) { return nil, nil }

func (c Claims) GetIssuer() (string, error) { return c.Issuer, nil }

func (c Claims) GetSubject() (string, error) {
	return strconv.FormatInt(int64(c.Subject), 10), nil
}

func (c Claims) GetAudience() (jwtv5.ClaimStrings, error) {
	if c.Audience == "" {
		return nil, nil
	}
	return jwtv5.ClaimStrings{c.Audience}, nil
}
