//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	commonhttp "driveshare/tests/common/httptest"
	"driveshare/tests/e2e"
	"driveshare/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("registers renter and owner accounts", func() {
		t := s.T()

		for _, role := range []string{"renter", "owner"} {
			w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
				Email:    role + "@example.com",
				Password: helper.DefaultPassword,
				Role:     role,
			}, "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			var res resdto.RegisterResponse
			commonhttp.DecodeResponseBody(t, w.Body, &res)
			require.NotEmpty(t, res.UserID)
		}
	})

	s.Run("rejects a duplicate email", func() {
		t := s.T()

		body := reqdto.RegisterRequest{
			Email:    "dup@example.com",
			Password: helper.DefaultPassword,
			Role:     "renter",
		}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = commonhttp.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("rejects invalid payloads", func() {
		t := s.T()

		tests := []struct {
			name string
			body reqdto.RegisterRequest
		}{
			{"bad email", reqdto.RegisterRequest{Email: "not-an-email", Password: helper.DefaultPassword, Role: "renter"}},
			{"short password", reqdto.RegisterRequest{Email: "a@example.com", Password: "short", Role: "renter"}},
			{"admin role not self-assignable", reqdto.RegisterRequest{Email: "a@example.com", Password: helper.DefaultPassword, Role: "admin"}},
			{"unknown role", reqdto.RegisterRequest{Email: "a@example.com", Password: helper.DefaultPassword, Role: "pilot"}},
		}
		for _, tt := range tests {
			w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code, tt.name)
		}
	})
}

func (s *authSuite) TestLoginAndMe() {
	s.Run("login returns tokens usable against protected routes", func() {
		t := s.T()

		userID, token := helper.RegisterAndLogin(t, s.Router, "renter@example.com", "renter")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me resdto.UserResponse
		commonhttp.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, userID, me.ID)
		require.Equal(t, "renter@example.com", me.Email)
		require.Equal(t, "renter", me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("rejects wrong credentials", func() {
		t := s.T()

		helper.RegisterAndLogin(t, s.Router, "renter@example.com", "renter")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "renter@example.com",
			Password: "wrongpassword",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = commonhttp.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "ghost@example.com",
			Password: helper.DefaultPassword,
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("protected routes require a token", func() {
		t := s.T()

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("exchanges a refresh token for a new pair", func() {
		t := s.T()

		helper.RegisterAndLogin(t, s.Router, "renter@example.com", "renter")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "renter@example.com",
			Password: helper.DefaultPassword,
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var login resdto.LoginResponse
		commonhttp.DecodeResponseBody(t, w.Body, &login)

		w = commonhttp.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqdto.RefreshRequest{
			RefreshToken: login.RefreshToken,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var pair resdto.TokenResponse
		commonhttp.DecodeResponseBody(t, w.Body, &pair)
		require.NotEmpty(t, pair.AccessToken)

		// The fresh access token must authenticate.
		w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, pair.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("rejects an access token used as refresh token", func() {
		t := s.T()

		_, accessToken := helper.RegisterAndLogin(t, s.Router, "renter@example.com", "renter")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqdto.RefreshRequest{
			RefreshToken: accessToken,
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
