//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"restaurant-api/internal/handler/middleware"
	"restaurant-api/internal/pkg/jwt"
	"restaurant-api/tests/common/httptest"
	usecasemock "restaurant-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)

	r := gin.New()
	r.GET("/protected", middleware.NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid access token reaches the handler", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		userID := uuid.New()
		claims := &jwt.Claims{
			UserID:           userID,
			TokenType:        jwt.TokenTypeAccess,
			RegisteredClaims: gojwt.RegisteredClaims{ID: "jti-1"},
		}
		validator.EXPECT().ValidateToken("good-token").Return(userID, claims, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id":"`+userID.String()+`"}`, rec.Body.String())
	})

	t.Run("missing header is rejected without validation", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "credentials were not provided")
	})

	t.Run("non bearer scheme is treated as missing", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		req := newRequest(http.MethodGet, "/protected")
		req.Header.Set("Authorization", "Token abc")
		rec := serve(r, req)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "credentials were not provided")
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("bad-token").Return(uuid.Nil, nil, jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/protected", nil, "bad-token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
