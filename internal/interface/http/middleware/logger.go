package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger 请求日志中间件
// 设计说明：
// 1. 每个请求生成唯一请求ID，写入响应头X-Request-ID，便于排查
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录表单内容（可能包含个人信息）
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()

		c.Next()

		latency := time.Since(start)

		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}

		log.Printf("[HTTP] %3d | %13v | %15s | %-7s %s | %s %s",
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			requestID,
			errMsg,
		)

		// 慢请求告警
		if latency > 3*time.Second {
			log.Printf("[WARN] slow request: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
