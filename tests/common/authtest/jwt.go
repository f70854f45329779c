//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, accessTTL time.Duration) *jwt.Service {
	t.Helper()
	if accessTTL == 0 {
		d, err := time.ParseDuration(h.cfg.AccessTokenDuration)
		require.NoError(t, err)
		accessTTL = d
	}
	refreshTTL, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, accessTTL, refreshTTL)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateRefreshToken(userID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken returns an access token whose exp lies in the past.
// The JWT numeric dates have second precision.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, -time.Minute).GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}
