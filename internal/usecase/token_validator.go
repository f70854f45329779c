package usecase

import (
	"restaurant-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, *jwt.Claims, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken only accepts access tokens; a refresh token cannot be used
// as a bearer credential.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, *jwt.Claims, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, nil, jwt.ErrInvalidToken
	}
	return claims.UserID, claims, nil
}
