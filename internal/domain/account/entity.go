package account

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/storefront/pkg/validate"
)

// Account 账户实体
// 后台余额管理页使用；余额与价格一样用decimal(10,2)存储
type Account struct {
	AccountNumber int64
	BranchName    string
	Balance       decimal.Decimal
}

// ParseBalance 解析表单里的balance字段
// 规则：必填、数字、最多2位小数（与价格同一套金额规则）
func ParseBalance(raw string) (decimal.Decimal, error) {
	balance, err := validate.Money("balance", raw)
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// ParseAccountNumber 解析路径里的account_number参数
func ParseAccountNumber(raw string) (int64, error) {
	if err := validate.Integer("account_number", raw); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &validate.FieldError{Field: "account_number", Message: "account_number must be numeric"}
	}
	return n, nil
}
