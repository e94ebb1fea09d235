package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/storefront/pkg/metrics"
)

// Metrics HTTP指标中间件
// 按方法+路由模板+状态码计数，并记录耗时直方图；
// 路由模板（如/customers/:page）避免高基数标签
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.Observe(
			c.Request.Method,
			c.FullPath(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
