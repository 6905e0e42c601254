//go:build unit

package user_test

import (
	"testing"

	"driveshare/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  Renter@Example.COM  ")
		require.NoError(t, err)
		assert.Equal(t, "renter@example.com", email.Value())
	})

	t.Run("invalid formats", func(t *testing.T) {
		for _, input := range []string{"", "plain", "no-at.example.com", "user@", "@example.com", "user@host"} {
			t.Run(input, func(t *testing.T) {
				_, err := user.NewEmail(input)
				require.ErrorIs(t, err, user.ErrInvalidEmail)
			})
		}
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword("1234567")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
}

func TestRoles(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, s := range []string{"renter", "owner", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.True(t, role.IsValid())
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("admin cannot be self-assigned at signup", func(t *testing.T) {
		_, err := user.NewSignupRole("admin")
		require.ErrorIs(t, err, user.ErrInvalidRole)

		for _, s := range []string{"renter", "owner"} {
			_, err := user.NewSignupRole(s)
			require.NoError(t, err)
		}
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("renter@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "$2a$10$hash", user.RoleRenter)
	require.NotNil(t, u)
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
	assert.Equal(t, user.RoleRenter, u.Role())
	assert.Equal(t, "renter@example.com", u.Email().Value())
}
