package customer

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/customer"
	"github.com/xiebiao/storefront/internal/domain/order"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
)

// RemoveCustomerUseCase 删除客户用例（级联删除）
// 设计说明：
// 1. 客户是订单、支付的父实体，直接删行会违反引用完整性
// 2. 清理顺序固定为子表先于父表：
//    支付 → 订单明细 → 订单处理关联 → 订单 → 客户本行
// 3. 全部步骤在同一事务内执行，任一步失败整体回滚，
//    不会出现删了一半的中间状态
type RemoveCustomerUseCase struct {
	customerRepo customer.Repository
	orderRepo    order.Repository
	txManager    *postgres.TxManager
}

// NewRemoveCustomerUseCase 创建删除客户用例
func NewRemoveCustomerUseCase(
	customerRepo customer.Repository,
	orderRepo order.Repository,
	txManager *postgres.TxManager,
) *RemoveCustomerUseCase {
	return &RemoveCustomerUseCase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		txManager:    txManager,
	}
}

// Execute 执行级联删除
// rawCustNo是路径原始参数；客户不存在时返回ErrCustomerNotFound
func (uc *RemoveCustomerUseCase) Execute(ctx context.Context, rawCustNo string) error {
	custNo, err := customer.ParseCustNo(rawCustNo)
	if err != nil {
		return err
	}

	// 先确认客户存在，避免对不存在的客户执行一串空删除
	if _, err := uc.customerRepo.FindByNo(ctx, custNo); err != nil {
		return err
	}

	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 子表先于父表
		if err := uc.orderRepo.DeletePaymentsByCustomer(txCtx, custNo); err != nil {
			return err
		}
		if err := uc.orderRepo.DeleteLineItemsByCustomer(txCtx, custNo); err != nil {
			return err
		}
		if err := uc.orderRepo.DeleteProcessLinksByCustomer(txCtx, custNo); err != nil {
			return err
		}
		if err := uc.orderRepo.DeleteOrdersByCustomer(txCtx, custNo); err != nil {
			return err
		}
		return uc.customerRepo.Delete(txCtx, custNo)
	})
}
