//go:build e2e

package ratelimit_test

import (
	"net/http"
	"strconv"
	"testing"

	"restaurant-api/internal/handler/dto/request"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/httptest"
	"restaurant-api/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type rateLimitSuite struct {
	e2e.SharedSuite
}

func TestRateLimitSuite(t *testing.T) {
	t.Parallel()
	s := new(rateLimitSuite)
	s.WithRedis = true
	suite.Run(t, s)
}

func (s *rateLimitSuite) TestLoginIsThrottled() {
	body := request.TokenObtainRequest{Username: "nobody", Password: builder.DefaultPassword}
	capacity := s.Config.RateLimit.Capacity

	for i := range capacity {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/auth/jwt/create/", body, "")
		s.Require().Equal(http.StatusUnauthorized, w.Code, "request %d", i+1)
		s.Equal(strconv.Itoa(capacity), w.Header().Get("X-RateLimit-Limit"))
		s.Equal(strconv.Itoa(capacity-i-1), w.Header().Get("X-RateLimit-Remaining"))
	}

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/auth/jwt/create/", body, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusTooManyRequests, "throttled")
	retry, err := strconv.Atoi(w.Header().Get("Retry-After"))
	s.Require().NoError(err)
	s.Positive(retry)

	// buckets are per route
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api-token-auth/", body, "")
	s.Equal(http.StatusBadRequest, w.Code)

	// unthrottled routes carry no limiter headers
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/menu/", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Empty(w.Header().Get("X-RateLimit-Limit"))
}
