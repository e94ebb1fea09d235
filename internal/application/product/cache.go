package product

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/product"
)

// CatalogCache 商品列表缓存接口
// 由infrastructure/persistence/redis.CatalogCache实现；
// 用例持有接口，Redis未启用时传nil，所有调用点都做nil判断降级
type CatalogCache interface {
	GetPage(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error)
	SetPage(ctx context.Context, page, pageSize int, products []*product.Product, total int64) error
	InvalidateLists(ctx context.Context) error
}
