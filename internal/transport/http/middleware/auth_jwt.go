package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-magmart-api/internal/core/auth"
	resp "go-magmart-api/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Fail(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Fail(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.Fail(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}
