package commands

import (
	"context"
	"log/slog"

	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/jwt"
	"restaurant-api/internal/pkg/password"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type RegisterResult struct {
	UserID uuid.UUID
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, r user.Registration) (*RegisterResult, error)
	ObtainTokenPair(ctx context.Context, username, plainPassword string) (*TokenPair, error)
	// ObtainAuthToken issues a single access token for clients of the legacy token endpoint.
	ObtainAuthToken(ctx context.Context, username, plainPassword string) (string, error)
	// Refresh issues a new access token; the refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Verify(ctx context.Context, token string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
	hash       user.HashFunc
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
		hash:       password.HashPassword,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, r user.Registration) (*RegisterResult, error) {
	u, err := user.NewUser(r, a.hash, a.clock.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.FieldError("username", errs.ErrDuplicateUsername)
		}
		return nil, errs.Wrap(err, "register user")
	}

	return &RegisterResult{UserID: u.ID()}, nil
}

func (a *authCommandsImpl) ObtainTokenPair(ctx context.Context, username, plainPassword string) (*TokenPair, error) {
	creds, err := a.validateUser(ctx, username, plainPassword)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.jwtService.GenerateAccessToken(creds.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(creds.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.recordLogin(ctx, creds.ID)
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) ObtainAuthToken(ctx context.Context, username, plainPassword string) (string, error) {
	creds, err := a.validateUser(ctx, username, plainPassword)
	if err != nil {
		return "", err
	}

	accessToken, err := a.jwtService.GenerateAccessToken(creds.ID)
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}

	a.recordLogin(ctx, creds.ID)
	return accessToken, nil
}

// recordLogin is best effort; the credentials were already accepted.
func (a *authCommandsImpl) recordLogin(ctx context.Context, userID uuid.UUID) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userID, a.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return "", ErrTokenValidation
	}

	// Validate user still exists and is active
	u, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrTokenValidation)
		}
		return "", err
	}
	if !u.IsActive {
		return "", ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}
	return accessToken, nil
}

func (a *authCommandsImpl) Verify(_ context.Context, token string) error {
	if _, err := a.jwtService.ValidateToken(token); err != nil {
		return errs.Mark(err, ErrTokenValidation)
	}
	return nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, username, plainPassword string) (*queries.UserCredentials, error) {
	creds, err := a.readStore.FindCredentialsByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// keep response time close to the wrong-password path
			password.BurnCompare(plainPassword)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !creds.IsActive {
		return nil, ErrUserInactive
	}

	return creds, nil
}
