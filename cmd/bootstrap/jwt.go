package bootstrap

import (
	"fmt"
	"time"

	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTTL, err := parseTTL("JWT_ACCESS_TOKEN_DURATION", cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := parseTTL("JWT_REFRESH_TOKEN_DURATION", cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, accessTTL, refreshTTL), nil
}

func parseTTL(name, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return d, nil
}
