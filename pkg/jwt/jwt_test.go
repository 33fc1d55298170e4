package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexterasolutions/go-utils/pkg/jwt"
)

const (
	testSecret   = "ACCESS_SECRET_2024!@#super_secure_random_string_1234567890"
	testAudience = "NEXTERA USER"
	testIssuer   = "Next Era Authentication Service"
)

func TestIssue(t *testing.T) {
	t.Parallel()

	t.Run("produces a three-segment compact token", func(t *testing.T) {
		t.Parallel()
		token, expiresAt, err := jwt.Issue(1, testSecret, time.Hour, testIssuer, testAudience)
		require.NoError(t, err)

		assert.Len(t, strings.Split(token, "."), 3)
		assert.False(t, expiresAt.IsZero())
	})

	t.Run("returns expiration matching the embedded exp claim", func(t *testing.T) {
		t.Parallel()
		token, expiresAt, err := jwt.Issue(1, testSecret, 24*time.Hour, testIssuer, testAudience)
		require.NoError(t, err)

		claims, err := jwt.ExtractClaims(token)
		require.NoError(t, err)
		assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt)
	})

	t.Run("expiration is roughly now plus ttl in UTC", func(t *testing.T) {
		t.Parallel()
		before := time.Now().UTC().Add(time.Hour)
		_, expiresAt, err := jwt.Issue(1, testSecret, time.Hour, testIssuer, testAudience)
		require.NoError(t, err)
		after := time.Now().UTC().Add(time.Hour)

		assert.False(t, expiresAt.Before(before.Truncate(time.Second)))
		assert.False(t, expiresAt.After(after))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("round-trips subject, organization, and audience", func(t *testing.T) {
		t.Parallel()
		token, _, err := jwt.Issue(1, testSecret, 24*time.Hour, testIssuer, testAudience, jwt.WithOrganization(1))
		require.NoError(t, err)

		claims, err := jwt.Validate(token, testSecret, testAudience)
		require.NoError(t, err)

		assert.Equal(t, int32(1), claims.Subject)
		assert.Equal(t, int32(1), claims.Organization)
		assert.Equal(t, testAudience, claims.Audience)
		assert.Equal(t, testIssuer, claims.Issuer)
	})

	t.Run("accepts a session UUID as issuer", func(t *testing.T) {
		t.Parallel()
		session := jwt.NewSessionID()
		require.NotEmpty(t, session)

		token, _, err := jwt.Issue(7, testSecret, time.Hour, session, testAudience)
		require.NoError(t, err)

		claims, err := jwt.Validate(token, testSecret, testAudience)
		require.NoError(t, err)
		assert.Equal(t, session, claims.Issuer)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		t.Parallel()
		token, _, err := jwt.Issue(1, testSecret, -time.Minute, testIssuer, testAudience)
		require.NoError(t, err)

		claims, err := jwt.Validate(token, testSecret, testAudience)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("rejects a wrong secret even before expiry", func(t *testing.T) {
		t.Parallel()
		token, _, err := jwt.Issue(1, testSecret, time.Hour, testIssuer, testAudience)
		require.NoError(t, err)

		_, err = jwt.Validate(token, "some-other-secret", testAudience)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
	})

	t.Run("rejects an audience mismatch with a correct secret", func(t *testing.T) {
		t.Parallel()
		token, _, err := jwt.Issue(1, testSecret, time.Hour, testIssuer, testAudience)
		require.NoError(t, err)

		_, err = jwt.Validate(token, testSecret, "NEXTERA ADMIN")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
	})

	t.Run("rejects a structurally damaged token", func(t *testing.T) {
		t.Parallel()
		_, err := jwt.Validate("not.a-token", testSecret, testAudience)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		t.Parallel()
		token, _, err := jwt.Issue(1, testSecret, time.Hour, testIssuer, testAudience)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + ".eyJzdWIiOjk5OX0." + parts[2]

		_, err = jwt.Validate(tampered, testSecret, testAudience)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
	})
}
