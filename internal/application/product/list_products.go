package product

import (
	"context"
	"log"

	"github.com/xiebiao/storefront/internal/domain/product"
)

// DefaultPageSize 商品列表每页条数
const DefaultPageSize = 10

// ListProductsUseCase 商品列表用例
// 设计说明：Cache-Aside——先查Redis列表页缓存，未命中
// （或Redis未启用/故障降级）再查数据库并回填
type ListProductsUseCase struct {
	productRepo product.Repository
	cache       CatalogCache
}

// NewListProductsUseCase 创建商品列表用例
func NewListProductsUseCase(productRepo product.Repository, cache CatalogCache) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo, cache: cache}
}

// ListProductsResponse 列表响应DTO
type ListProductsResponse struct {
	Products   []*product.Product
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// Execute 执行分页查询
// page≤0时按第1页处理；越界页返回空列表而非错误
func (uc *ListProductsUseCase) Execute(ctx context.Context, page int) (*ListProductsResponse, error) {
	if page <= 0 {
		page = 1
	}

	// 1. 查缓存
	if uc.cache != nil {
		products, total, err := uc.cache.GetPage(ctx, page, DefaultPageSize)
		if err == nil && products != nil {
			return uc.buildResponse(products, total, page), nil
		}
	}

	// 2. 缓存未命中，查数据库
	products, total, err := uc.productRepo.List(ctx, page, DefaultPageSize)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存（失败只记日志，不影响主流程）
	if uc.cache != nil {
		if err := uc.cache.SetPage(ctx, page, DefaultPageSize, products, total); err != nil {
			log.Printf("回填商品列表缓存失败: %v", err)
		}
	}

	return uc.buildResponse(products, total, page), nil
}

func (uc *ListProductsUseCase) buildResponse(products []*product.Product, total int64, page int) *ListProductsResponse {
	totalPages := int((total + DefaultPageSize - 1) / DefaultPageSize)
	return &ListProductsResponse{
		Products:   products,
		Total:      total,
		Page:       page,
		PageSize:   DefaultPageSize,
		TotalPages: totalPages,
	}
}
