package order

import (
	"context"
	"log"

	"github.com/xiebiao/storefront/internal/domain/customer"
	"github.com/xiebiao/storefront/internal/domain/order"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
)

// PlaceOrderUseCase 下单用例
// 设计说明：
// 1. 校验顺序固定：字段格式 → 客户存在 → 商品存在，
//    第一个失败立即返回，失败时数据库不产生任何写入
// 2. 订单行与明细行在同一事务中创建；订单号由数据库序列分配
// 3. 事务提交后发布order.placed事件（可选，fire-and-forget）
type PlaceOrderUseCase struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	txManager    *postgres.TxManager
	events       EventPublisher
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	orderRepo order.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	txManager *postgres.TxManager,
	events EventPublisher,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		txManager:    txManager,
		events:       events,
	}
}

// PlaceOrderRequest 下单请求DTO（表单原始值）
type PlaceOrderRequest struct {
	CustNo string
	SKU    string
	Qty    string
}

// Execute 执行下单
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*order.Order, error) {
	// 1. 字段格式校验
	custNo, err := customer.ParseCustNo(req.CustNo)
	if err != nil {
		return nil, err
	}
	qty, err := order.ParseQty(req.Qty)
	if err != nil {
		return nil, err
	}

	// 2. 引用完整性预检
	if _, err := uc.customerRepo.FindByNo(ctx, custNo); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.FindBySKU(ctx, req.SKU); err != nil {
		return nil, err
	}

	// 3. 订单与明细行在同一事务中创建
	o := order.New(custNo, req.SKU, qty)
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.orderRepo.Create(txCtx, o)
	})
	if err != nil {
		return nil, err
	}

	// 4. 事务提交后发布事件
	if uc.events != nil {
		payload := OrderPlacedPayload{
			OrderNo: o.OrderNo,
			CustNo:  o.CustNo,
			SKU:     req.SKU,
			Qty:     qty,
		}
		if err := uc.events.Publish(ctx, EventOrderPlaced, payload); err != nil {
			log.Printf("发布order.placed事件失败: %v", err)
		}
	}

	return o, nil
}
