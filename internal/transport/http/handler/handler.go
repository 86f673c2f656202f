// Package handler maps each HTTP request onto exactly one service call and
// one envelope response.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-magmart-api/internal/transport/http/response"
)

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		resp.Fail(c, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

// internalErr 统一的兜底：记细节，回笼统 500
func internalErr(c *gin.Context, l *zap.Logger, err error) {
	l.Error("unhandled failure",
		zap.String("rid", c.GetString("X-Request-ID")),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	resp.Fail(c, http.StatusInternalServerError, "Internal Server Error.")
}

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
