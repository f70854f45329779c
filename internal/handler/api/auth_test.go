//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"restaurant-api/internal/handler/api"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/httptest"
	"restaurant-api/tests/common/testutil"
	commandsmock "restaurant-api/tests/mock/commands"
	queriesmock "restaurant-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	s.router.POST("/auth/users/", s.handler.Register)
	s.router.GET("/auth/users/me/", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
	s.router.POST("/auth/jwt/create/", s.handler.CreateToken)
	s.router.POST("/auth/jwt/refresh/", s.handler.RefreshToken)
	s.router.POST("/auth/jwt/verify/", s.handler.VerifyToken)
	s.router.POST("/api-token-auth/", s.handler.ObtainAuthToken)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/users/"
	b := builder.NewUserBuilder()
	view := b.BuildView()

	s.Run("success: returns 201 without the password", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), b.BuildRegistration()).
			Return(&commands.RegisterResult{UserID: view.ID}, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRegisterRequestDTO(), "")

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID.String(), res.ID)
		s.Equal("littlelemon", res.Username)
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("error: 400 on missing credentials", func() {
		for _, field := range []string{"username", "password"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), b.BuildRegisterRequestDTO(), testutil.Field(field, nil))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
				s.Contains(httptest.DecodeErrorDetail(s.T(), rec), field)
			})
		}
	})

	s.Run("error: 400 on duplicate username", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), b.BuildRegistration()).
			Return(nil, errs.FieldError("username", errs.ErrDuplicateUsername))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRegisterRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		s.Equal([]string{errs.ErrDuplicateUsername.Error()}, httptest.DecodeErrorDetail(s.T(), rec)["username"])
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/users/me/"

	s.Run("success: returns the current user", func() {
		view := builder.NewUserBuilder().BuildView()
		view.ID = s.userID
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(s.userID.String(), res.ID)
		s.Equal("guest@littlelemon.com", res.Email)
	})

	s.Run("error: 401 without a principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 401 when the account is gone or inactive", func() {
		for _, err := range []error{
			errs.Mark(errors.New("no rows"), errs.ErrUserNotFound),
			queries.ErrUserInactive,
		} {
			s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not found")
		}
	})
}

func (s *AuthHandlerTestSuite) TestCreateToken() {
	url := "/auth/jwt/create/"
	reqBody := builder.NewUserBuilder().BuildTokenRequestDTO()

	s.Run("success: returns the token pair", func() {
		s.mockCommands.EXPECT().ObtainTokenPair(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(&commands.TokenPair{AccessToken: "access-jwt", RefreshToken: "refresh-jwt"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.TokenPairResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.TokenPairResponse{Refresh: "refresh-jwt", Access: "access-jwt"}, res)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "No active account",
			},
			{
				name:           "user inactive",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "No active account",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ObtainTokenPair(gomock.Any(), reqBody.Username, reqBody.Password).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on missing password", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *AuthHandlerTestSuite) TestRefreshToken() {
	url := "/auth/jwt/refresh/"
	body := map[string]any{"refresh": "refresh-jwt"}

	s.Run("success: returns only an access token", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "refresh-jwt").Return("new-access", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"access":"new-access"}`, rec.Body.String())
	})

	s.Run("error: 401 on an invalid refresh token", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "refresh-jwt").
			Return("", errs.Mark(errors.New("token expired"), commands.ErrTokenValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token is invalid or expired")
	})
}

func (s *AuthHandlerTestSuite) TestVerifyToken() {
	url := "/auth/jwt/verify/"
	body := map[string]any{"token": "some-jwt"}

	s.Run("success: returns an empty object", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "some-jwt").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{}`, rec.Body.String())
	})

	s.Run("error: 401 on a bad token", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "some-jwt").Return(commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token is invalid or expired")
	})
}

func (s *AuthHandlerTestSuite) TestObtainAuthToken() {
	url := "/api-token-auth/"
	reqBody := builder.NewUserBuilder().BuildTokenRequestDTO()

	s.Run("success: returns a single token", func() {
		s.mockCommands.EXPECT().ObtainAuthToken(gomock.Any(), reqBody.Username, reqBody.Password).Return("access-jwt", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("access-jwt", res.Token)
	})

	s.Run("error: 400 with non_field_errors on bad credentials", func() {
		s.mockCommands.EXPECT().ObtainAuthToken(gomock.Any(), reqBody.Username, reqBody.Password).
			Return("", commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		s.Equal([]string{"Unable to log in with provided credentials."},
			httptest.DecodeErrorDetail(s.T(), rec)["non_field_errors"])
	})
}
