package product

import (
	"context"
	"log"

	"github.com/xiebiao/storefront/internal/domain/order"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
)

// RemoveProductUseCase 删除商品用例（级联删除）
// 设计说明：
// 1. 清理顺序固定为子表先于父表：
//    订单明细 → 配送记录 → 供应商 → 商品本行
// 2. 全部步骤在同一事务内执行，任一步失败整体回滚
type RemoveProductUseCase struct {
	productRepo product.Repository
	orderRepo   order.Repository
	txManager   *postgres.TxManager
	cache       CatalogCache
}

// NewRemoveProductUseCase 创建删除商品用例
func NewRemoveProductUseCase(
	productRepo product.Repository,
	orderRepo order.Repository,
	txManager *postgres.TxManager,
	cache CatalogCache,
) *RemoveProductUseCase {
	return &RemoveProductUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		txManager:   txManager,
		cache:       cache,
	}
}

// Execute 执行级联删除
// 商品不存在时返回ErrProductNotFound
func (uc *RemoveProductUseCase) Execute(ctx context.Context, sku string) error {
	if _, err := uc.productRepo.FindBySKU(ctx, sku); err != nil {
		return err
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 子表先于父表
		if err := uc.orderRepo.DeleteLineItemsBySKU(txCtx, sku); err != nil {
			return err
		}
		if err := uc.productRepo.DeleteDeliveriesBySKU(txCtx, sku); err != nil {
			return err
		}
		if err := uc.productRepo.DeleteSuppliersBySKU(txCtx, sku); err != nil {
			return err
		}
		return uc.productRepo.Delete(txCtx, sku)
	})
	if err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateLists(ctx); err != nil {
			log.Printf("删除商品列表缓存失败: %v", err)
		}
	}

	return nil
}
