package response

import (
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
	TokenResponse
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

func FromLoginResult(res *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID: res.UserID,
		Role:   res.Role,
		TokenResponse: TokenResponse{
			AccessToken:  res.TokenPair.AccessToken,
			RefreshToken: res.TokenPair.RefreshToken,
		},
	}
}

func FromTokenPair(pair *commands.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

func FromUserView(rm *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       rm.ID,
		Email:    rm.Email,
		Role:     rm.Role,
		IsActive: rm.IsActive,
	}
}
