//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/handler/dto/response"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/dbtest"
	"restaurant-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser obtains a JWT pair through the public endpoint.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) response.TokenPairResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/auth/jwt/create/",
		request.TokenObtainRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pair response.TokenPairResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.Access, "access token missing")
	require.NotEmpty(t, pair.Refresh, "refresh token missing")
	return pair
}

// CreateAndLogin inserts an active user and returns its access token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, username, builder.DefaultPassword, true)
	return LoginUser(t, router, username, builder.DefaultPassword).Access
}
