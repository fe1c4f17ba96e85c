package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求分配 ID，沿用客户端传入的值
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > 64 {
			rid = uuid.New().String()
		}
		c.Set("requestID", rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// GetRequestID 获取当前请求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString("requestID")
}
