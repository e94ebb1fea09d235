package order

import "context"

// EventPublisher 领域事件发布接口
// 由pkg/mq.Publisher实现；RabbitMQ未启用时传nil，
// 发布点做nil判断跳过。事件在事务提交后发布，
// fire-and-forget：发布失败只记日志，不回滚业务
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// 事件路由键
const (
	EventOrderPlaced = "order.placed"
	EventOrderPaid   = "order.paid"
)

// OrderPlacedPayload order.placed事件载荷
type OrderPlacedPayload struct {
	OrderNo uint64 `json:"order_no"`
	CustNo  int64  `json:"cust_no"`
	SKU     string `json:"sku"`
	Qty     int    `json:"qty"`
}

// OrderPaidPayload order.paid事件载荷
type OrderPaidPayload struct {
	OrderNo uint64 `json:"order_no"`
	CustNo  int64  `json:"cust_no"`
}
