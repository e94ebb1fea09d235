package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository 商品仓储接口（依赖倒置）
type Repository interface {
	// Create 创建商品
	Create(ctx context.Context, p *Product) error

	// FindBySKU 根据SKU查找商品
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// List 按录入顺序分页查询
	List(ctx context.Context, page, pageSize int) ([]*Product, int64, error)

	// UpdatePrice 更新价格
	UpdatePrice(ctx context.Context, sku string, price decimal.Decimal) error

	// UpdateDescription 更新描述
	UpdateDescription(ctx context.Context, sku string, description string) error

	// Delete 删除商品行
	// 级联顺序（子表先于父表）由用例层在同一事务内组织：
	// 订单明细 → 配送记录 → 供应商 → 商品
	Delete(ctx context.Context, sku string) error

	// DeleteDeliveriesBySKU 删除供应该商品的供应商的配送记录
	DeleteDeliveriesBySKU(ctx context.Context, sku string) error

	// DeleteSuppliersBySKU 删除该商品的供应商关联
	DeleteSuppliersBySKU(ctx context.Context, sku string) error

	// ListSuppliers 供应商列表（后台页面）
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
}
