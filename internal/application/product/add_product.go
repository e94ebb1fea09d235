package product

import (
	"context"
	"log"

	"github.com/xiebiao/storefront/internal/domain/product"
)

// AddProductUseCase 新增商品用例
type AddProductUseCase struct {
	productRepo product.Repository
	cache       CatalogCache
}

// NewAddProductUseCase 创建新增商品用例
func NewAddProductUseCase(productRepo product.Repository, cache CatalogCache) *AddProductUseCase {
	return &AddProductUseCase{productRepo: productRepo, cache: cache}
}

// AddProductRequest 新增商品请求DTO（表单原始值）
type AddProductRequest struct {
	SKU         string
	Name        string
	Price       string
	EAN         string
	Description string
}

// Execute 执行新增商品
// 校验失败时不触碰数据库；成功后删除列表缓存
func (uc *AddProductUseCase) Execute(ctx context.Context, req AddProductRequest) (*product.Product, error) {
	p, err := product.New(req.SKU, req.Name, req.Price, req.EAN, req.Description)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	// 缓存失效失败不影响主流程（TTL兜底过期）
	if uc.cache != nil {
		if err := uc.cache.InvalidateLists(ctx); err != nil {
			log.Printf("删除商品列表缓存失败: %v", err)
		}
	}

	return p, nil
}
