package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"go-magmart-api/internal/core/auth"
	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
	"go-magmart-api/pkg/utils"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthService struct {
	users      *repo.UserRepo
	tokens     *repo.TokenRepo
	jwter      *auth.JWTer
	refreshTTL time.Duration
}

func NewAuthService(db *gorm.DB, jwter *auth.JWTer, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      repo.NewUserRepo(db),
		tokens:     repo.NewTokenRepo(db),
		jwter:      jwter,
		refreshTTL: refreshTTL,
	}
}

// Login 校验密码，发访问令牌 + 保存散列后的刷新令牌。
// 凭证不对返回 (nil, nil)，调用方映射成 401。
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		return nil, nil
	}
	return s.issuePair(ctx, u)
}

// Refresh 轮换：旧令牌作废，发新的一对。无效/过期/已作废返回 (nil, nil)。
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	row, err := s.tokens.FindByHash(ctx, hashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if row == nil || row.Revoked {
		return nil, nil
	}
	if row.ExpireAt != nil && row.ExpireAt.Before(time.Now()) {
		return nil, nil
	}
	u, err := s.users.FindByID(ctx, row.UserID)
	if err != nil || u == nil {
		return nil, err
	}
	if err := s.tokens.Revoke(ctx, row.ID); err != nil {
		return nil, err
	}
	return s.issuePair(ctx, u)
}

// Logout 作废该用户所有在册刷新令牌。
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.RevokeAllForUser(ctx, userID)
}

func (s *AuthService) issuePair(ctx context.Context, u *domain.User) (*TokenPair, error) {
	access, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	refresh := newOpaqueToken()
	expire := time.Now().Add(s.refreshTTL)
	row := domain.RefreshToken{
		HashedToken: hashToken(refresh),
		UserID:      u.ID,
		ExpireAt:    &expire,
	}
	if err := s.tokens.Create(ctx, &row); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func newOpaqueToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func hashToken(t string) string {
	sum := sha256.Sum256([]byte(t))
	return hex.EncodeToString(sum[:])
}
