package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"go-magmart-api/internal/core/auth"
	"go-magmart-api/internal/core/database"
	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/service"
	"go-magmart-api/internal/transport/http/router"
	"go-magmart-api/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

// testAPI 完整引擎 + 内存库，走和生产一致的中间件链。
type testAPI struct {
	engine *gin.Engine
	db     *gorm.DB
	jwter  *auth.JWTer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "magmart-test", TTL: time.Minute}
	engine := router.NewAPIEngine(router.Deps{
		Log:        zap.NewNop(),
		DB:         db,
		JWTer:      jwter,
		ItemStore:  service.NewItemStore(),
		RefreshTTL: 24 * time.Hour,
	})
	return &testAPI{engine: engine, db: db, jwter: jwter}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

// bearerFor 直接落一行用户并签发令牌，绕过注册流程。
func (a *testAPI) bearerFor(t *testing.T, email, role string) (int64, string) {
	t.Helper()
	u := domain.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  utils.HashPassword("password123"),
		Role:      role,
	}
	require.NoError(t, a.db.Create(&u).Error)
	tok, err := a.jwter.Issue(u.ID, role)
	require.NoError(t, err)
	return u.ID, "Bearer " + tok
}
