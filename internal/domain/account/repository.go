package account

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository 账户仓储接口（依赖倒置）
type Repository interface {
	// List 全部账户（后台页面，量小不分页）
	List(ctx context.Context) ([]*Account, error)

	// FindByNumber 根据账号查找
	FindByNumber(ctx context.Context, accountNumber int64) (*Account, error)

	// UpdateBalance 更新余额
	UpdateBalance(ctx context.Context, accountNumber int64, balance decimal.Decimal) error

	// Delete 删除账户
	Delete(ctx context.Context, accountNumber int64) error
}
