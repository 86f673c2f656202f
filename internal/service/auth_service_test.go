package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-magmart-api/internal/core/auth"
	"go-magmart-api/internal/domain"
)

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "magmart-test", TTL: time.Minute}
}

func TestAuthLogin_IssuesVerifiableTokens(t *testing.T) {
	db := newTestDB(t)
	jwter := newTestJWTer()
	users := NewUserService(db)
	svc := NewAuthService(db, jwter, 24*time.Hour)
	ctx := context.Background()

	u := seedUser(t, users, "liga@example.com")

	pair, err := svc.Login(ctx, "liga@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := jwter.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UID)
	assert.Equal(t, "customer", claims.Role)

	// 库里只能有散列，不能有原文
	var rows []domain.RefreshToken
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.NotEqual(t, pair.RefreshToken, rows[0].HashedToken)
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAuthService(db, newTestJWTer(), 24*time.Hour)
	ctx := context.Background()

	seedUser(t, users, "liga@example.com")

	pair, err := svc.Login(ctx, "liga@example.com", "wrongpassword")
	require.NoError(t, err)
	assert.Nil(t, pair)

	pair, err = svc.Login(ctx, "nobody@example.com", "password123")
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestAuthRefresh_RotatesAndRevokesOld(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAuthService(db, newTestJWTer(), 24*time.Hour)
	ctx := context.Background()

	seedUser(t, users, "liga@example.com")
	first, err := svc.Login(ctx, "liga@example.com", "password123")
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// 旧令牌已作废，再用一次必须被拒
	reused, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.Nil(t, reused)
}

func TestAuthRefresh_UnknownOrExpiredToken(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAuthService(db, newTestJWTer(), -time.Hour)
	ctx := context.Background()

	seedUser(t, users, "liga@example.com")

	pair, err := svc.Refresh(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, pair)

	// TTL 为负 → 登录发出的刷新令牌立即过期
	expired, err := svc.Login(ctx, "liga@example.com", "password123")
	require.NoError(t, err)
	pair, err = svc.Refresh(ctx, expired.RefreshToken)
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestAuthLogout_RevokesEverySession(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	svc := NewAuthService(db, newTestJWTer(), 24*time.Hour)
	ctx := context.Background()

	u := seedUser(t, users, "liga@example.com")
	a, err := svc.Login(ctx, "liga@example.com", "password123")
	require.NoError(t, err)
	b, err := svc.Login(ctx, "liga@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, u.ID))

	for _, tok := range []string{a.RefreshToken, b.RefreshToken} {
		pair, err := svc.Refresh(ctx, tok)
		require.NoError(t, err)
		assert.Nil(t, pair)
	}
}
