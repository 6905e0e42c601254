//go:build e2e

package helper

import (
	"net/http"
	"testing"

	reqdto "driveshare/internal/handler/dto/request"
	resdto "driveshare/internal/handler/dto/response"
	commonhttp "driveshare/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// RegisterAndLogin creates a user through the public API and returns
// its ID and a valid access token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/register", reqdto.RegisterRequest{
		Email:    email,
		Password: DefaultPassword,
		Role:     role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	var registered resdto.RegisterResponse
	commonhttp.DecodeResponseBody(t, w.Body, &registered)

	w = commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login", reqdto.LoginRequest{
		Email:    email,
		Password: DefaultPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var login resdto.LoginResponse
	commonhttp.DecodeResponseBody(t, w.Body, &login)
	require.Equal(t, registered.UserID, login.UserID)

	return login.UserID, login.AccessToken
}

// CreateVehicle lists a vehicle as the given owner and returns its ID.
func CreateVehicle(t *testing.T, router *gin.Engine, ownerToken, name string, dailyRateCents int32) uuid.UUID {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/vehicles", reqdto.CreateVehicleRequest{
		Name:           name,
		Description:    "e2e fixture",
		DailyRateCents: dailyRateCents,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, "create vehicle failed: %s", w.Body.String())

	var vehicle resdto.VehicleResponse
	commonhttp.DecodeResponseBody(t, w.Body, &vehicle)

	return vehicle.ID
}
