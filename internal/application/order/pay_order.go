package order

import (
	"context"
	"log"

	"github.com/xiebiao/storefront/internal/domain/customer"
	"github.com/xiebiao/storefront/internal/domain/order"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
)

// PayOrderUseCase 支付订单用例
// 设计说明：pay-once约束有两道防线——
// 1. 事务内预检：查订单时携带支付状态，已支付直接拒绝
// 2. 数据库兜底：payments.order_no是主键，并发双付时
//    后提交的一方触发唯一冲突，同样收到ErrOrderAlreadyPaid
// 无论哪条路径失败，payments表中该订单始终至多一行
type PayOrderUseCase struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
	txManager    *postgres.TxManager
	events       EventPublisher
}

// NewPayOrderUseCase 创建支付订单用例
func NewPayOrderUseCase(
	orderRepo order.Repository,
	customerRepo customer.Repository,
	txManager *postgres.TxManager,
	events EventPublisher,
) *PayOrderUseCase {
	return &PayOrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		events:       events,
	}
}

// PayOrderRequest 支付请求DTO（表单原始值）
type PayOrderRequest struct {
	CustNo  string
	OrderNo string
}

// Execute 执行支付
// 校验顺序固定：字段格式 → 客户存在 → 订单存在 → 未支付
func (uc *PayOrderUseCase) Execute(ctx context.Context, req PayOrderRequest) error {
	// 1. 字段格式校验
	custNo, err := customer.ParseCustNo(req.CustNo)
	if err != nil {
		return err
	}
	orderNo, err := order.ParseOrderNo(req.OrderNo)
	if err != nil {
		return err
	}

	var payment *order.Payment
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 2. 客户存在
		if _, err := uc.customerRepo.FindByNo(txCtx, custNo); err != nil {
			return err
		}

		// 3. 订单存在，且查询结果携带支付状态
		o, err := uc.orderRepo.FindByNo(txCtx, orderNo)
		if err != nil {
			return err
		}

		// 4. 状态机转换（已支付在这里被拒绝）
		p, err := o.Pay()
		if err != nil {
			return err
		}
		p.CustNo = custNo

		// 5. 插入支付行（主键冲突兜底并发双付）
		if err := uc.orderRepo.CreatePayment(txCtx, p); err != nil {
			return err
		}

		payment = p
		return nil
	})
	if err != nil {
		return err
	}

	// 事务提交后发布事件
	if uc.events != nil {
		payload := OrderPaidPayload{
			OrderNo: payment.OrderNo,
			CustNo:  payment.CustNo,
		}
		if err := uc.events.Publish(ctx, EventOrderPaid, payload); err != nil {
			log.Printf("发布order.paid事件失败: %v", err)
		}
	}

	return nil
}
