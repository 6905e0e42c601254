package commands

import (
	"context"

	"driveshare/internal/domain/user"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/pkg/jwt"
	"driveshare/internal/pkg/password"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyTaken    = errs.New("email already taken")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterRequest struct {
	Email    string
	Password string
	Role     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      string
	TokenPair TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	jwts      *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwts *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		jwts:      jwts,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewSignupRole(req.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, terr := tx.Users().Create(ctx, tx.DB(), user.NewUser(email, hash, role))
		if terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyTaken
			}
			return terr
		}
		userID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	creds, err := a.readStore.FindCredentialsByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !creds.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(creds.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issueTokens(creds.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), creds.ID)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return &LoginResult{
		UserID:    creds.ID,
		Role:      creds.Role,
		TokenPair: *pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwts.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.jwts.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwts.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
