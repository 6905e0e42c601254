//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"driveshare/internal/domain/user"
	"driveshare/internal/handler/api"
	resdto "driveshare/internal/handler/dto/response"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"
	"driveshare/tests/common/httptest"
	"driveshare/tests/common/testutil"
	commandsmock "driveshare/tests/mock/commands"
	queriesmock "driveshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler

	userID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleRenter)
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registerBody() map[string]any {
	return map[string]any{
		"email":    "renter@example.com",
		"password": "password123",
		"role":     "renter",
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	s.Run("success: returns 201 with the new user ID", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerBody(), "")
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.RegisterResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(newID, resp.UserID)
	})

	s.Run("duplicate email: returns 409", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEmailAlreadyTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerBody(), "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("validation failures return 400", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", "1234567")},
			{name: "missing role", mutate: testutil.Field("role", nil)},
			{name: "admin role rejected at binding", mutate: testutil.Field("role", "admin")},
			{name: "unknown role", mutate: testutil.Field("role", "superuser")},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), registerBody(), c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	body := map[string]any{"email": "renter@example.com", "password": "password123"}

	s.Run("success: returns 200 with a token pair", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{
				UserID: s.userID,
				Role:   "renter",
				TokenPair: commands.TokenPair{
					AccessToken:  "access-token",
					RefreshToken: "refresh-token",
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.LoginResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(s.userID, resp.UserID)
		s.Equal("renter", resp.Role)
		s.Equal("access-token", resp.AccessToken)
		s.Equal("refresh-token", resp.RefreshToken)
	})

	s.Run("wrong credentials: returns 401", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("inactive account: returns 403", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: returns a fresh pair", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"refresh_token": "old-refresh"}, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.TokenResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("new-access", resp.AccessToken)
	})

	s.Run("invalid token: returns 401", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"refresh_token": "stale"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("missing token: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current profile", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(&queries.AuthorizedUserView{
				ID:       s.userID,
				Email:    "renter@example.com",
				Role:     "renter",
				IsActive: true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.UserResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(s.userID, resp.ID)
		s.Equal("renter@example.com", resp.Email)
	})

	s.Run("unauthenticated: returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("user gone: returns 404", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
