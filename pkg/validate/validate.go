// Package validate 提供表单字段校验工具
//
// 设计说明：
// 1. 所有校验在任何数据库调用之前执行，第一个违反的规则即返回
// 2. 校验结果是带字段名的FieldError（而不是散落在handler里的纯文本返回），
//    handler层统一把它渲染成纯文本响应
// 3. 价格/余额这类金额字段统一规范化小数分隔符（","→"."），
//    并限制最多2位小数，避免浮点精度问题（参见shopspring/decimal）
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError 字段校验错误
// Field是违反规则的字段名，Message是用户可见的完整提示
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// fieldErrorf 构造字段错误（message里已包含字段名）
func fieldErrorf(field, format string, args ...interface{}) *FieldError {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

var (
	digitsRE   = regexp.MustCompile(`^[0-9]+$`)
	alphaRE    = regexp.MustCompile(`^[a-zA-Z ]+$`)
	intFieldRE = regexp.MustCompile(`^-?[0-9]+$`)
)

// Required 必填校验
func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return fieldErrorf(field, "%s is required", field)
	}
	return nil
}

// MaxLen 最大长度校验
func MaxLen(field, value string, max int) *FieldError {
	if len(value) > max {
		return fieldErrorf(field, "%s must be at most %d characters long", field, max)
	}
	return nil
}

// Digits 纯数字校验（电话号码、EAN等，不允许符号）
func Digits(field, value string) *FieldError {
	if !digitsRE.MatchString(value) {
		return fieldErrorf(field, "%s must be numeric", field)
	}
	return nil
}

// ExactDigits 定长纯数字校验（如EAN必须恰好13位）
func ExactDigits(field, value string, n int) *FieldError {
	if !digitsRE.MatchString(value) || len(value) != n {
		return fieldErrorf(field, "%s must be exactly %d digits", field, n)
	}
	return nil
}

// Alphabetic 纯字母校验（允许空格分隔的多个单词）
func Alphabetic(field, value string) *FieldError {
	if !alphaRE.MatchString(value) {
		return fieldErrorf(field, "%s must contain only letters", field)
	}
	return nil
}

// Integer 整数字段解析（cust_no、qty、account_number等）
// 返回规范化后的原始串，交由调用方strconv转换
func Integer(field, value string) *FieldError {
	if !intFieldRE.MatchString(strings.TrimSpace(value)) {
		return fieldErrorf(field, "%s must be numeric", field)
	}
	return nil
}

// Money 金额字段解析
// 规则：
// 1. 必填
// 2. 小数分隔符","规范化为"."
// 3. 整数与小数部分都必须是纯数字（拒绝"1,2,3"、"abc"这类输入）
// 4. 最多2位小数
func Money(field, raw string) (decimal.Decimal, *FieldError) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, fieldErrorf(field, "%s is required", field)
	}

	normalized := strings.ReplaceAll(raw, ",", ".")
	parts := strings.Split(normalized, ".")
	if len(parts) > 2 {
		return decimal.Zero, fieldErrorf(field, "%s must be numeric", field)
	}
	if len(parts) == 2 && len(parts[1]) > 2 {
		return decimal.Zero, fieldErrorf(field, "%s must have at most 2 decimal places", field)
	}
	for _, p := range parts {
		if !digitsRE.MatchString(p) {
			return decimal.Zero, fieldErrorf(field, "%s must be numeric", field)
		}
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fieldErrorf(field, "%s must be numeric", field)
	}
	return d, nil
}
