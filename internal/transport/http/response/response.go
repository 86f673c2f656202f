// Package response implements the uniform JSON envelope:
// success {"message": ..., "<entity>": ...}, failure {"message": ...}.
// HTTP 状态码承载错误类别（400/401/403/404/500）。
package response

import (
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, status int, message, key string, v any) {
	c.JSON(status, gin.H{"message": message, key: v})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
