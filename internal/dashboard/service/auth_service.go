package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/config"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/repository"
	"github.com/cuihengjie1982/Director-OS-v2.0/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrUserNotFound 登录名不存在
var ErrUserNotFound = errors.New("user not found")

// AuthService 认证服务
// 按登录名解析用户并签发JWT；会话记录写入Redis以支持登出失效
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		rdb:      rdb,
		cfg:      cfg,
	}
}

// LoginResult 登录结果
type LoginResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// Login 按登录名解析用户并签发Token
func (s *AuthService) Login(ctx context.Context, username string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	// 会话记录，登出时删除
	if s.rdb != nil {
		key := sessionKey(user.ID)
		if err := s.rdb.Set(ctx, key, token, s.cfg.JWT.TokenExpire).Err(); err != nil {
			return nil, fmt.Errorf("store session: %w", err)
		}
	}

	return &LoginResult{User: user, Token: token}, nil
}

// Logout 删除会话记录
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}

func sessionKey(userID string) string {
	return "session:" + userID
}

// generateToken 签发JWT
func (s *AuthService) generateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID:               user.ID,
		Username:             user.Username,
		Name:                 user.Name,
		Role:                 user.Role,
		AssignedProjectCodes: user.AssignedProjectCodes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.TokenExpire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}
