package tokens_test

import (
	"testing"
	"time"

	"parcelcarrier/internal/adapters/out/tokens"
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTProvider(t *testing.T) {
	secret := []byte("test-secret-at-least-32-bytes-long")

	newProvider := func(t *testing.T, ttl time.Duration) *tokens.JWTProvider {
		t.Helper()
		p, err := tokens.NewJWTProvider(secret, "parcelcarrier", ttl)
		require.NoError(t, err)
		return p
	}

	claims := ports.AuthClaims{
		AccountID: kernel.NewUUID(),
		Login:     "driver_1",
		Role:      account.RoleTransporter,
	}

	t.Run("issued token round-trips its claims", func(t *testing.T) {
		provider := newProvider(t, time.Hour)

		token, err := provider.Issue(claims)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		verified, err := provider.Verify(token)
		require.NoError(t, err)
		assert.True(t, verified.AccountID.IsEqual(claims.AccountID))
		assert.Equal(t, "driver_1", verified.Login)
		assert.Equal(t, account.RoleTransporter, verified.Role)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		provider := newProvider(t, time.Nanosecond)

		token, err := provider.Issue(claims)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = provider.Verify(token)
		require.ErrorIs(t, err, tokens.ErrInvalidToken)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		provider := newProvider(t, time.Hour)
		other, err := tokens.NewJWTProvider([]byte("another-secret-also-32-bytes-long!"), "parcelcarrier", time.Hour)
		require.NoError(t, err)

		token, err := other.Issue(claims)
		require.NoError(t, err)

		_, err = provider.Verify(token)
		require.ErrorIs(t, err, tokens.ErrInvalidToken)
	})

	t.Run("token from a different issuer is rejected", func(t *testing.T) {
		provider := newProvider(t, time.Hour)
		other, err := tokens.NewJWTProvider(secret, "someone-else", time.Hour)
		require.NoError(t, err)

		token, err := other.Issue(claims)
		require.NoError(t, err)

		_, err = provider.Verify(token)
		require.ErrorIs(t, err, tokens.ErrInvalidToken)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		provider := newProvider(t, time.Hour)

		_, err := provider.Verify("not.a.token")
		require.ErrorIs(t, err, tokens.ErrInvalidToken)
	})

	t.Run("empty secret is rejected at construction", func(t *testing.T) {
		_, err := tokens.NewJWTProvider(nil, "parcelcarrier", time.Hour)
		require.Error(t, err)
	})
}
