package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"costbook/internal/dto"
	"costbook/internal/models"
	"costbook/internal/services"
	"costbook/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) postJSON(path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, s.e.NewContext(req, rec)
}

func (s *AuthHandlerSuite) TestSignup() {
	s.Run("successful signup", func() {
		expectedUser := &models.User{
			ID:        uuid.New(),
			Username:  "estimator.one",
			Role:      models.RoleEstimator,
			CreatedAt: time.Now(),
		}

		s.authService.EXPECT().
			Signup(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedUser, nil).
			Times(1)

		rec, c := s.postJSON("/signup", map[string]string{
			"username": "estimator.one",
			"password": "SecurePassword123!",
		})

		err := s.handler.Signup(c)
		s.NoError(err)
		s.Equal(http.StatusCreated, rec.Code)

		var response SuccessResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.NotNil(response.Data)
	})

	s.Run("duplicate username", func() {
		s.authService.EXPECT().
			Signup(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrUserAlreadyExists).
			Times(1)

		rec, c := s.postJSON("/signup", map[string]string{
			"username": "estimator.one",
			"password": "SecurePassword123!",
		})

		err := s.handler.Signup(c)
		s.NoError(err)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("AUTH_006", errorResp.Error.Code)
	})

	s.Run("invalid username rejected by validation", func() {
		// No service call expected: validation fails first
		rec, c := s.postJSON("/signup", map[string]string{
			"username": "x",
			"password": "SecurePassword123!",
		})

		err := s.handler.Signup(c)
		s.Error(err)
		_ = rec
	})

	s.Run("password too short rejected by validation", func() {
		rec, c := s.postJSON("/signup", map[string]string{
			"username": "estimator.one",
			"password": "short",
		})

		err := s.handler.Signup(c)
		s.Error(err)
		_ = rec
	})
}

func (s *AuthHandlerSuite) TestLogin() {
	s.Run("successful login", func() {
		tokens := &dto.TokenResponse{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			TokenType:    "Bearer",
			ExpiresAt:    time.Now().Add(30 * time.Minute),
		}

		s.authService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(tokens, nil).
			Times(1)

		rec, c := s.postJSON("/login", map[string]string{
			"username": "estimator.one",
			"password": "SecurePassword123!",
		})

		err := s.handler.Login(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response dto.TokenResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("access-token", response.AccessToken)
		s.Equal("Bearer", response.TokenType)
	})

	s.Run("invalid credentials", func() {
		s.authService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidCredentials).
			Times(1)

		rec, c := s.postJSON("/login", map[string]string{
			"username": "estimator.one",
			"password": "WrongPassword123!",
		})

		err := s.handler.Login(c)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("AUTH_001", errorResp.Error.Code)
	})

	s.Run("missing password rejected by validation", func() {
		_, c := s.postJSON("/login", map[string]string{
			"username": "estimator.one",
		})

		err := s.handler.Login(c)
		s.Error(err)
	})
}

func (s *AuthHandlerSuite) TestRefreshToken() {
	s.Run("successful refresh", func() {
		tokens := &dto.TokenResponse{
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
			TokenType:    "Bearer",
			ExpiresAt:    time.Now().Add(30 * time.Minute),
		}

		s.authService.EXPECT().
			RefreshTokens("old-refresh-token", gomock.Any(), gomock.Any()).
			Return(tokens, nil).
			Times(1)

		rec, c := s.postJSON("/refresh", map[string]string{
			"refreshToken": "old-refresh-token",
		})

		err := s.handler.RefreshToken(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response dto.TokenResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("new-access-token", response.AccessToken)
	})

	s.Run("invalid refresh token", func() {
		s.authService.EXPECT().
			RefreshTokens(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidRefreshToken).
			Times(1)

		rec, c := s.postJSON("/refresh", map[string]string{
			"refreshToken": "garbage",
		})

		err := s.handler.RefreshToken(c)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("AUTH_004", errorResp.Error.Code)
	})
}

func (s *AuthHandlerSuite) TestLogout() {
	s.Run("successful logout", func() {
		s.authService.EXPECT().
			Logout("some-access-token", gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.Header.Set("Authorization", "Bearer some-access-token")
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.Logout(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing authorization header", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.Logout(c)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("AUTH_002", errorResp.Error.Code)
	})
}
