package order

import (
	"context"
)

// Repository 订单仓储接口（依赖倒置）
// 设计说明：
// 1. 订单与明细行必须在同一事务中创建
// 2. CreatePayment依赖payments.order_no主键兜底pay-once不变式：
//    即使两个事务同时通过了"未支付"预检，后提交的一方也会
//    因主键冲突收到ErrOrderAlreadyPaid
// 3. Delete*By*方法是客户级联删除的组成步骤，调用方负责在
//    同一事务内按子表先于父表的顺序执行
type Repository interface {
	// Create 创建订单（包含明细行），订单号由数据库序列分配后回填
	Create(ctx context.Context, o *Order) error

	// FindByNo 根据订单号查找订单（包含明细行与支付状态）
	FindByNo(ctx context.Context, orderNo uint64) (*Order, error)

	// CreatePayment 插入支付记录
	CreatePayment(ctx context.Context, p *Payment) error

	// HasPayment 订单是否已有支付记录
	HasPayment(ctx context.Context, orderNo uint64) (bool, error)

	// CountPayments 订单的支付记录数（测试与对账用）
	CountPayments(ctx context.Context, orderNo uint64) (int64, error)

	// DeletePaymentsByCustomer 删除某客户的全部支付记录
	DeletePaymentsByCustomer(ctx context.Context, custNo int64) error

	// DeleteLineItemsByCustomer 删除某客户全部订单的明细行
	DeleteLineItemsByCustomer(ctx context.Context, custNo int64) error

	// DeleteLineItemsBySKU 删除引用某商品的全部明细行（商品级联）
	DeleteLineItemsBySKU(ctx context.Context, sku string) error

	// DeleteProcessLinksByCustomer 删除某客户订单的处理关联行
	DeleteProcessLinksByCustomer(ctx context.Context, custNo int64) error

	// DeleteOrdersByCustomer 删除某客户的全部订单行
	DeleteOrdersByCustomer(ctx context.Context, custNo int64) error
}
