package order

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/storefront/pkg/validate"
)

// OrderStatus 订单状态
// 状态机只有两个状态：CREATED（订单与明细行存在）→ PAID（存在支付行）。
// 没有取消路径，也没有后续状态；是否已支付由payments表中
// 是否存在该订单的行决定，而不是orders表上的状态列
type OrderStatus int

const (
	StatusCreated OrderStatus = iota + 1 // 已创建（未支付）
	StatusPaid                           // 已支付
)

// String 实现Stringer接口（方便日志输出）
func (s OrderStatus) String() string {
	switch s {
	case StatusCreated:
		return "CREATED"
	case StatusPaid:
		return "PAID"
	default:
		return "UNKNOWN"
	}
}

// Order 订单实体（聚合根）
// 设计说明：
// 1. OrderNo由数据库序列分配（bigserial），对外表现为
//    "当前最大值+1"的单调递增编号；并发下单时由序列串行化分配，
//    不再复用原来的扫表取最大值写法
// 2. LineItem是聚合内子实体，明细行不落价格快照——
//    金额永远按当前商品价格即时计算
type Order struct {
	OrderNo uint64
	CustNo  int64
	Date    time.Time
	Items   []LineItem
	Status  OrderStatus
}

// LineItem 订单明细行
// 订单与商品的关联关系，只记录数量；价格在查询时按
// products.price即时计算
type LineItem struct {
	OrderNo uint64
	SKU     string
	Qty     int
}

// Payment 支付记录
// 一个订单至多一条支付记录（payments.order_no为主键），
// 其存在即表示订单已支付
type Payment struct {
	OrderNo uint64
	CustNo  int64
	PaidAt  time.Time
}

// New 创建新订单（工厂方法）
// 订单号由持久化层回填；初始状态为CREATED
func New(custNo int64, sku string, qty int) *Order {
	return &Order{
		CustNo: custNo,
		Date:   time.Now(),
		Status: StatusCreated,
		Items: []LineItem{
			{SKU: sku, Qty: qty},
		},
	}
}

// Pay 支付转换（领域行为）
// 业务规则：只允许CREATED→PAID一次转换；重复支付返回ErrOrderAlreadyPaid
func (o *Order) Pay() (*Payment, error) {
	if o.Status == StatusPaid {
		return nil, ErrOrderAlreadyPaid
	}
	o.Status = StatusPaid
	return &Payment{
		OrderNo: o.OrderNo,
		CustNo:  o.CustNo,
		PaidAt:  time.Now(),
	}, nil
}

// Total 计算订单总金额
// prices是sku→当前单价的映射；总额 = Σ 单价×数量。
// 实际数据中一个订单只有一行明细，但计算对多行明细同样成立
func (o *Order) Total(prices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		price, ok := prices[item.SKU]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return total
}

// ParseQty 解析表单里的qty字段
// 规则：必填、数字、大于0
func ParseQty(raw string) (int, error) {
	if err := validate.Required("qty", raw); err != nil {
		return 0, err
	}
	if err := validate.Integer("qty", raw); err != nil {
		return 0, err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		return 0, &validate.FieldError{Field: "qty", Message: "qty must be a positive number"}
	}
	return qty, nil
}

// ParseOrderNo 解析路径里的order_no参数
func ParseOrderNo(raw string) (uint64, error) {
	if err := validate.Integer("order_no", raw); err != nil {
		return 0, err
	}
	orderNo, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &validate.FieldError{Field: "order_no", Message: "order_no must be numeric"}
	}
	return orderNo, nil
}
