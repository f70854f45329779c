package response

import "restaurant-api/internal/usecase/queries"

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username" example:"littlelemon"`
	Email    string `json:"email" example:"guest@littlelemon.com"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return copyView[UserResponse](v)
}

type TokenPairResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
