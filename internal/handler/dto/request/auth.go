package request

import "restaurant-api/internal/domain/user"

type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"littlelemon"`
	Password string `json:"password" binding:"required" example:"lemon-pass-2024"`
	Email    string `json:"email" example:"guest@littlelemon.com"`
}

func (r *RegisterRequest) ToRegistration() user.Registration {
	return user.Registration{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// TokenObtainRequest is shared by the JWT pair endpoint and the single token endpoint.
type TokenObtainRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type TokenVerifyRequest struct {
	Token string `json:"token" binding:"required"`
}
