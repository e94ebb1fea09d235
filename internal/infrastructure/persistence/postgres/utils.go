package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一约束冲突错误
// PostgreSQL: duplicate key value violates unique constraint (SQLSTATE 23505)
// SQLite(测试环境): UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断（TranslateError开启时）
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查：按错误信息判断
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint")
}
