package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"cidian/internal/model/auth"
	"cidian/internal/pkg/jwt"
	"cidian/internal/pkg/password"
	authRepo "cidian/internal/repository/auth"
)

// AuthService 认证服务
// 会话Token不落库，有效性只取决于签名和过期时间
type AuthService struct {
	repo authRepo.AdminRepo
	jwt  *jwt.JWT
}

// NewAuthService 创建认证服务
func NewAuthService(repo authRepo.AdminRepo, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		repo: repo,
		jwt:  jwt.NewJWT(jwtSecret, tokenExpiry),
	}
}

// LoginResult 登录结果
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	Admin     *auth.Admin
}

// Authenticate 使用用户名或邮箱登录
// 用户不存在、未启用、密码错误统一返回 ErrInvalidCredentials
func (s *AuthService) Authenticate(ctx context.Context, identifier, pwd string) (*LoginResult, error) {
	identifier = auth.NormalizeIdentity(identifier)
	if identifier == "" || pwd == "" {
		return nil, invalid("Username and password are required")
	}

	admin, err := s.repo.FindActiveByLogin(ctx, identifier)
	if err != nil {
		log.Debug().Err(err).Msg("login rejected: admin lookup failed")
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(pwd, admin.Password) {
		log.Debug().Str("admin_id", admin.ID).Msg("login rejected: password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID, admin.Username, admin.Role.String())
	if err != nil {
		log.Error().Err(err).Str("admin_id", admin.ID).Msg("failed to issue session token")
		return nil, err
	}

	if err := s.repo.UpdateLastLoginAt(ctx, admin.ID); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login time")
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: s.jwt.GetExpiration(),
		Admin:     admin,
	}, nil
}

// Verify 校验会话Token，任何失败都返回 jwt.ErrInvalidToken
func (s *AuthService) Verify(token string) (*jwt.Claims, error) {
	return s.jwt.ValidateToken(token)
}

// TokenExpiry 会话有效期（用于 Cookie Max-Age）
func (s *AuthService) TokenExpiry() time.Duration {
	return s.jwt.GetExpiration()
}
