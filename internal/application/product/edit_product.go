package product

import (
	"context"
	"log"
	"strings"

	"github.com/xiebiao/storefront/internal/domain/product"
)

// EditProductUseCase 编辑商品用例
// 只允许修改价格和描述两个字段；两者都为空视为"没有修改"
type EditProductUseCase struct {
	productRepo product.Repository
	cache       CatalogCache
}

// NewEditProductUseCase 创建编辑商品用例
func NewEditProductUseCase(productRepo product.Repository, cache CatalogCache) *EditProductUseCase {
	return &EditProductUseCase{productRepo: productRepo, cache: cache}
}

// EditProductRequest 编辑请求DTO（表单原始值）
type EditProductRequest struct {
	SKU         string
	Price       string // 为空表示不改价格
	Description string // 为空表示不改描述
}

// Execute 执行编辑商品
// 规则：
// 1. 商品必须存在
// 2. price、description都为空 → ErrNoChanges
// 3. 先提交的字段生效：price优先于description，一次只改一个字段
func (uc *EditProductUseCase) Execute(ctx context.Context, req EditProductRequest) error {
	if _, err := uc.productRepo.FindBySKU(ctx, req.SKU); err != nil {
		return err
	}

	price := strings.TrimSpace(req.Price)
	description := strings.TrimSpace(req.Description)

	switch {
	case price != "":
		parsed, err := product.ParsePrice(price)
		if err != nil {
			return err
		}
		if err := uc.productRepo.UpdatePrice(ctx, req.SKU, parsed); err != nil {
			return err
		}
	case description != "":
		if err := product.ValidateDescription(description); err != nil {
			return err
		}
		if err := uc.productRepo.UpdateDescription(ctx, req.SKU, description); err != nil {
			return err
		}
	default:
		return product.ErrNoChanges
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateLists(ctx); err != nil {
			log.Printf("删除商品列表缓存失败: %v", err)
		}
	}

	return nil
}
