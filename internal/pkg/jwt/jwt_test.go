//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"driveshare/internal/domain/user"
	"driveshare/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", 15*time.Minute, 720*time.Hour)
	userID := uuid.New()

	t.Run("access token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleOwner)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "owner", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleRenter)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleRenter)
		require.NoError(t, err)

		other := jwt.NewService("different-secret", 15*time.Minute, 720*time.Hour)
		_, err = other.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute, 720*time.Hour)
		token, err := expired.GenerateAccessToken(userID, user.RoleRenter)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
