package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"costbook/internal/dto"
	"costbook/internal/models"
	"costbook/internal/repositories"
	"costbook/internal/repositories/repository_mocks"
	"costbook/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	userRepo             *repository_mocks.MockUserRepositoryInterface
	refreshTokenRepo     *repository_mocks.MockRefreshTokenRepositoryInterface
	auditRepo            *repository_mocks.MockAuditLogRepositoryInterface
	blacklistedTokenRepo *repository_mocks.MockBlacklistedTokenRepositoryInterface
	passwordService      *service_mocks.MockPasswordServiceInterface
	tokenService         *service_mocks.MockTokenServiceInterface
	metrics              *service_mocks.MockMetricsRecorderInterface
	authService          AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.refreshTokenRepo = repository_mocks.NewMockRefreshTokenRepositoryInterface(s.ctrl)
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.blacklistedTokenRepo = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.passwordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.authService = NewAuthService(s.userRepo, s.refreshTokenRepo, s.auditRepo, s.blacklistedTokenRepo, s.passwordService, s.tokenService, s.metrics, slog.Default())
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestSignup_Success() {
	req := &dto.SignupRequest{
		Username: "estimator.one",
		Password: "SecurePass123!x",
	}

	s.userRepo.EXPECT().GetByUsername(req.Username).Return(nil, repositories.ErrUserNotFound)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed-password", nil)
	s.userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		s.Equal(req.Username, user.Username)
		s.Equal("hashed-password", user.PasswordHash)
		s.Equal(models.RoleEstimator, user.Role)
		user.ID = uuid.New()
		return nil
	})
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "signup"})

	user, err := s.authService.Signup(req, "192.168.1.1", "test-agent")
	s.NoError(err)
	s.NotNil(user)
	s.Equal(req.Username, user.Username)
}

func (s *AuthServiceTestSuite) TestSignup_UsernameTaken() {
	req := &dto.SignupRequest{
		Username: "estimator.one",
		Password: "SecurePass123!x",
	}

	existing := &models.User{ID: uuid.New(), Username: req.Username}
	s.userRepo.EXPECT().GetByUsername(req.Username).Return(existing, nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	user, err := s.authService.Signup(req, "192.168.1.1", "test-agent")
	s.ErrorIs(err, ErrUserAlreadyExists)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestSignup_HashFailure() {
	req := &dto.SignupRequest{
		Username: "estimator.one",
		Password: "SecurePass123!x",
	}

	s.userRepo.EXPECT().GetByUsername(req.Username).Return(nil, repositories.ErrUserNotFound)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("", errors.New("hash failure"))

	user, err := s.authService.Signup(req, "192.168.1.1", "test-agent")
	s.Error(err)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	req := &dto.LoginRequest{
		Username: "estimator.one",
		Password: "SecurePass123!x",
	}
	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: "hashed-password",
		Role:         models.RoleEstimator,
	}

	s.userRepo.EXPECT().GetByUsername(req.Username).Return(user, nil)
	s.passwordService.EXPECT().ComparePassword(req.Password, user.PasswordHash).Return(true)
	s.userRepo.EXPECT().UpdateLastLogin(user.ID).Return(nil)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("access-token", time.Now().Add(time.Hour), nil)
	s.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("refresh-token", time.Now().Add(7*24*time.Hour), nil)
	s.refreshTokenRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(token *models.RefreshToken) error {
		s.Equal(user.ID, token.UserID)
		s.NotEmpty(token.TokenHash)
		s.NotEqual("refresh-token", token.TokenHash)
		return nil
	})
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "login"})

	tokens, err := s.authService.Login(req, "192.168.1.1", "test-agent")
	s.NoError(err)
	s.Equal("access-token", tokens.AccessToken)
	s.Equal("refresh-token", tokens.RefreshToken)
	s.Equal("Bearer", tokens.TokenType)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	req := &dto.LoginRequest{
		Username: "nobody",
		Password: "SecurePass123!x",
	}

	s.userRepo.EXPECT().GetByUsername(req.Username).Return(nil, repositories.ErrUserNotFound)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	tokens, err := s.authService.Login(req, "192.168.1.1", "test-agent")
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	req := &dto.LoginRequest{
		Username: "estimator.one",
		Password: "WrongPassword1!",
	}
	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: "hashed-password",
	}

	s.userRepo.EXPECT().GetByUsername(req.Username).Return(user, nil)
	s.passwordService.EXPECT().ComparePassword(req.Password, user.PasswordHash).Return(false)
	s.auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionFailedLogin, log.Action)
		return nil
	})
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})

	tokens, err := s.authService.Login(req, "192.168.1.1", "test-agent")
	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_Success() {
	userID := uuid.New()
	user := &models.User{ID: userID, Username: "estimator.one"}
	claims := &models.CustomClaims{
		UserID:    userID.String(),
		TokenType: TokenTypeRefresh,
	}
	stored := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken("refresh-token"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	s.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
	s.refreshTokenRepo.EXPECT().GetByTokenHash(hashToken("refresh-token")).Return(stored, nil)
	s.userRepo.EXPECT().GetByID(userID).Return(user, nil)
	s.refreshTokenRepo.EXPECT().Revoke(stored.ID).Return(nil)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("new-access", time.Now().Add(time.Hour), nil)
	s.tokenService.EXPECT().GenerateRefreshToken(userID).Return("new-refresh", time.Now().Add(7*24*time.Hour), nil)
	s.refreshTokenRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	tokens, err := s.authService.RefreshTokens("refresh-token", "192.168.1.1", "test-agent")
	s.NoError(err)
	s.Equal("new-access", tokens.AccessToken)
	s.Equal("new-refresh", tokens.RefreshToken)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_InvalidToken() {
	s.tokenService.EXPECT().ValidateRefreshToken("bad-token").Return(nil, ErrInvalidToken)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	tokens, err := s.authService.RefreshTokens("bad-token", "192.168.1.1", "test-agent")
	s.ErrorIs(err, ErrInvalidRefreshToken)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RevokedToken() {
	userID := uuid.New()
	claims := &models.CustomClaims{
		UserID:    userID.String(),
		TokenType: TokenTypeRefresh,
	}
	revokedAt := time.Now().Add(-time.Minute)
	stored := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken("refresh-token"),
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	s.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
	s.refreshTokenRepo.EXPECT().GetByTokenHash(hashToken("refresh-token")).Return(stored, nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	tokens, err := s.authService.RefreshTokens("refresh-token", "192.168.1.1", "test-agent")
	s.ErrorIs(err, ErrInvalidRefreshToken)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestLogout_Success() {
	userID := uuid.New()
	claims := &models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-123"},
		UserID:           userID.String(),
		TokenType:        TokenTypeAccess,
	}

	s.tokenService.EXPECT().ValidateAccessToken("access-token").Return(claims, nil)
	s.tokenService.EXPECT().GetTokenExpiry("access-token").Return(time.Now().Add(time.Hour), nil)
	s.blacklistedTokenRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(token *models.BlacklistedToken) error {
		s.Equal("jti-123", token.JTI)
		s.Equal(userID, token.UserID)
		return nil
	})
	s.refreshTokenRepo.EXPECT().RevokeAllForUser(userID).Return(nil)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	err := s.authService.Logout("access-token", "192.168.1.1", "test-agent")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestLogout_ExpiredTokenStillBlacklisted() {
	s.tokenService.EXPECT().ValidateAccessToken("expired-token").Return(nil, ErrExpiredToken)
	s.tokenService.EXPECT().GetJTI("expired-token").Return("jti-expired", nil)
	s.blacklistedTokenRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(token *models.BlacklistedToken) error {
		s.Equal("jti-expired", token.JTI)
		return nil
	})

	err := s.authService.Logout("expired-token", "192.168.1.1", "test-agent")
	s.NoError(err)
}
