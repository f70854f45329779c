package api

import (
	"net/http"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/handler/httperr"
	"restaurant-api/internal/handler/middleware"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgNoActiveAccount = "No active account found with the given credentials"
	msgTokenInvalid    = "Token is invalid or expired"
	msgUnableToLogIn   = "Unable to log in with provided credentials."
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/users/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToRegistration())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.renderUser(c, http.StatusCreated, result.UserID)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/users/me/ [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthorized(c, nil, "Authentication credentials were not provided")
		return
	}
	h.renderUser(c, http.StatusOK, userID)
}

// @Summary Obtain JWT pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenObtainRequest true "Credentials"
// @Success 200 {object} resdto.TokenPairResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/jwt/create/ [post]
func (h *AuthHandler) CreateToken(c *gin.Context) {
	var req reqdto.TokenObtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	pair, err := h.cmds.ObtainTokenPair(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if isCredentialError(err) {
			httperr.AbortUnauthorized(c, err, msgNoActiveAccount)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.TokenPairResponse{
		Refresh: pair.RefreshToken,
		Access:  pair.AccessToken,
	})
}

// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRefreshRequest true "Refresh token"
// @Success 200 {object} resdto.AccessTokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/jwt/refresh/ [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req reqdto.TokenRefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	access, err := h.cmds.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		if errs.Is(err, commands.ErrTokenValidation) || errs.Is(err, commands.ErrUserInactive) {
			httperr.AbortUnauthorized(c, err, msgTokenInvalid)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AccessTokenResponse{Access: access})
}

// @Summary Verify token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenVerifyRequest true "Token"
// @Success 200 {object} object
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/jwt/verify/ [post]
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req reqdto.TokenVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	if err := h.cmds.Verify(c.Request.Context(), req.Token); err != nil {
		httperr.AbortUnauthorized(c, err, msgTokenInvalid)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// @Summary Obtain auth token
// @Description Single token endpoint kept for older clients
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenObtainRequest true "Credentials"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api-token-auth/ [post]
func (h *AuthHandler) ObtainAuthToken(c *gin.Context) {
	var req reqdto.TokenObtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	token, err := h.cmds.ObtainAuthToken(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if isCredentialError(err) {
			detail := map[string][]string{"non_field_errors": {msgUnableToLogIn}}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", detail)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{Token: token})
}

func (h *AuthHandler) renderUser(c *gin.Context, status int, userID uuid.UUID) {
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		// a token can outlive its account
		if errs.Is(err, errs.ErrUserNotFound) || errs.Is(err, queries.ErrUserInactive) {
			httperr.AbortUnauthorized(c, err, "User not found")
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func isCredentialError(err error) bool {
	return errs.Is(err, commands.ErrInvalidCredentials) || errs.Is(err, commands.ErrUserInactive)
}
