package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/storefront/internal/domain/order"
	"github.com/xiebiao/storefront/internal/domain/product"
)

// OrderTotalUseCase 订单金额查询用例
// 设计说明：明细行不存价格快照，金额按商品当前价格即时计算——
// 改价后再查同一订单，金额会跟着变
type OrderTotalUseCase struct {
	orderRepo   order.Repository
	productRepo product.Repository
}

// NewOrderTotalUseCase 创建订单金额查询用例
func NewOrderTotalUseCase(orderRepo order.Repository, productRepo product.Repository) *OrderTotalUseCase {
	return &OrderTotalUseCase{orderRepo: orderRepo, productRepo: productRepo}
}

// OrderTotalResponse 金额响应DTO
type OrderTotalResponse struct {
	OrderNo uint64
	CustNo  int64
	Status  string
	Total   decimal.Decimal
}

// Execute 执行金额查询
// rawOrderNo是路径原始参数；订单不存在时返回ErrOrderNotFound
func (uc *OrderTotalUseCase) Execute(ctx context.Context, rawOrderNo string) (*OrderTotalResponse, error) {
	orderNo, err := order.ParseOrderNo(rawOrderNo)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.FindByNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	// 取各明细行商品的当前价格
	prices := make(map[string]decimal.Decimal, len(o.Items))
	for _, item := range o.Items {
		if _, ok := prices[item.SKU]; ok {
			continue
		}
		p, err := uc.productRepo.FindBySKU(ctx, item.SKU)
		if err != nil {
			return nil, err
		}
		prices[item.SKU] = p.Price
	}

	return &OrderTotalResponse{
		OrderNo: o.OrderNo,
		CustNo:  o.CustNo,
		Status:  o.Status.String(),
		Total:   o.Total(prices),
	}, nil
}
