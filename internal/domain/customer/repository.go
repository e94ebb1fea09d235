package customer

import (
	"context"
)

// Repository 客户仓储接口（依赖倒置）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 支持事务操作（通过context传递事务DB）
type Repository interface {
	// Create 创建客户
	Create(ctx context.Context, c *Customer) error

	// FindByNo 根据客户编号查找
	FindByNo(ctx context.Context, custNo int64) (*Customer, error)

	// List 按录入顺序分页查询
	List(ctx context.Context, page, pageSize int) ([]*Customer, int64, error)

	// Delete 删除客户行
	// 注意：只删除customers表本身，级联清理由用例层按
	// 子表先于父表的固定顺序在同一事务内完成
	Delete(ctx context.Context, custNo int64) error
}
