//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"restaurant-api/internal/pkg/jwt"
	"restaurant-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("validator-secret", 5*time.Minute, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("access token is accepted", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID)
		require.NoError(t, err)

		id, claims, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID)
		require.NoError(t, err)

		id, _, err := validator.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, _, err := validator.ValidateToken("not-a-jwt")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
