package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping 健康检查
// 固定返回{"message":"pong!","status":"success"}，监控探针依赖
// 这个精确的载荷
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong!",
		"status":  "success",
	})
}
