package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/storefront/pkg/errors"
	"github.com/xiebiao/storefront/pkg/response"
	"github.com/xiebiao/storefront/pkg/validate"
)

// wantsJSON 内容协商
// 规约：Accept包含application/json且不包含text/html时返回JSON，
// 其余情况（浏览器、空Accept、*/*）渲染HTML页面
func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") &&
		!strings.Contains(accept, "text/html")
}

// fail 表单失败的统一出口
// 规约：所有校验失败、引用不存在、状态冲突都返回一段纯文本描述
// （HTTP 400），且保证失败时没有发生任何写入
func fail(c *gin.Context, err error) {
	response.PlainError(c, errorMessage(err))
}

// errorMessage 提取面向用户的错误文案
// FieldError与AppError携带现成的英文文案；未知错误不向外
// 泄露细节，统一归为internal server error
func errorMessage(err error) string {
	var fieldErr *validate.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}
	if apperrors.IsAppError(err) {
		return apperrors.GetAppError(err).Message
	}
	return apperrors.ErrInternal.Message
}

// pageParam 解析路径里的页码参数
// 缺失、非数字、≤0都按第1页处理
func pageParam(c *gin.Context) int {
	raw := c.Param("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page <= 0 {
		return 1
	}
	return page
}
