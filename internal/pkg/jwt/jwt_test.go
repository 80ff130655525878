//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-cron-secret"

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDispatchToken(t *testing.T) {
	issued := time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)

	t.Run("round trip keeps the caller", func(t *testing.T) {
		s := NewService(testSecret, 15*time.Minute)
		s.now = fixedNow(issued)

		token, err := s.GenerateDispatchToken("nightly")
		require.NoError(t, err)

		s.now = fixedNow(issued.Add(10 * time.Minute))
		claims, err := s.ValidateDispatchToken(token)
		require.NoError(t, err)
		assert.Equal(t, "nightly", claims.Caller)
		assert.Equal(t, DispatchSubject, claims.Subject)
	})

	t.Run("expired", func(t *testing.T) {
		s := NewService(testSecret, 15*time.Minute)
		s.now = fixedNow(issued)

		token, err := s.GenerateDispatchToken("nightly")
		require.NoError(t, err)

		s.now = fixedNow(issued.Add(16 * time.Minute))
		_, err = s.ValidateDispatchToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other := NewService("another-secret", 15*time.Minute)
		token, err := other.GenerateDispatchToken("nightly")
		require.NoError(t, err)

		_, err = NewService(testSecret, 15*time.Minute).ValidateDispatchToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong subject", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "login",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = NewService(testSecret, 15*time.Minute).ValidateDispatchToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService(testSecret, 15*time.Minute).ValidateDispatchToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no secret configured", func(t *testing.T) {
		s := NewService("", 15*time.Minute)

		_, err := s.GenerateDispatchToken("nightly")
		assert.ErrorIs(t, err, ErrNoSecret)

		_, err = s.ValidateDispatchToken("anything")
		assert.ErrorIs(t, err, ErrNoSecret)
	})
}
