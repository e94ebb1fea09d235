package product

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/product"
)

// ListSuppliersUseCase 供应商列表用例（后台页面）
type ListSuppliersUseCase struct {
	productRepo product.Repository
}

// NewListSuppliersUseCase 创建供应商列表用例
func NewListSuppliersUseCase(productRepo product.Repository) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{productRepo: productRepo}
}

// Execute 查询全部供应商
func (uc *ListSuppliersUseCase) Execute(ctx context.Context) ([]*product.Supplier, error) {
	return uc.productRepo.ListSuppliers(ctx)
}
