package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/order"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// orderRepository 订单仓储实现(PostgreSQL)
// 设计说明:
// 1. 订单号由orders表的自增序列分配，Create后回填到实体，
//    并发下单由数据库保证不重号
// 2. CreatePayment把主键冲突翻译为ErrOrderAlreadyPaid，
//    是pay-once约束的最后一道防线
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单（含明细行）
// 调用方负责用TxManager包事务；订单号插入后回填
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	db := getDB(ctx, r.db)

	model := &OrderModel{
		CustNo: o.CustNo,
		Date:   o.Date,
	}
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填数据库分配的订单号
	o.OrderNo = model.OrderNo

	for i := range o.Items {
		o.Items[i].OrderNo = model.OrderNo
		item := &LineItemModel{
			OrderNo: model.OrderNo,
			SKU:     o.Items[i].SKU,
			Qty:     o.Items[i].Qty,
		}
		if err := db.Create(item).Error; err != nil {
			return apperrors.Wrap(err, "创建订单明细失败")
		}
	}

	return nil
}

// FindByNo 根据订单号查找订单（含明细行与支付状态）
func (r *orderRepository) FindByNo(ctx context.Context, orderNo uint64) (*order.Order, error) {
	db := getDB(ctx, r.db)

	var model OrderModel
	err := db.Where("order_no = ?", orderNo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	var itemModels []LineItemModel
	if err := db.Where("order_no = ?", orderNo).Order("sku ASC").Find(&itemModels).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询订单明细失败")
	}

	paid, err := r.HasPayment(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		OrderNo: model.OrderNo,
		CustNo:  model.CustNo,
		Date:    model.Date,
		Status:  order.StatusCreated,
	}
	if paid {
		o.Status = order.StatusPaid
	}
	for _, im := range itemModels {
		o.Items = append(o.Items, order.LineItem{
			OrderNo: im.OrderNo,
			SKU:     im.SKU,
			Qty:     im.Qty,
		})
	}

	return o, nil
}

// CreatePayment 插入支付记录
// payments.order_no是主键，重复支付触发唯一冲突 → ErrOrderAlreadyPaid
func (r *orderRepository) CreatePayment(ctx context.Context, p *order.Payment) error {
	db := getDB(ctx, r.db)
	model := &PaymentModel{
		OrderNo: p.OrderNo,
		CustNo:  p.CustNo,
		PaidAt:  p.PaidAt,
	}
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return order.ErrOrderAlreadyPaid
		}
		return apperrors.Wrap(err, "创建支付记录失败")
	}
	return nil
}

// HasPayment 订单是否已有支付记录
func (r *orderRepository) HasPayment(ctx context.Context, orderNo uint64) (bool, error) {
	count, err := r.CountPayments(ctx, orderNo)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountPayments 订单的支付记录数
func (r *orderRepository) CountPayments(ctx context.Context, orderNo uint64) (int64, error) {
	var count int64
	db := getDB(ctx, r.db)
	err := db.Model(&PaymentModel{}).Where("order_no = ?", orderNo).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "查询支付记录失败")
	}
	return count, nil
}

// DeletePaymentsByCustomer 删除某客户的全部支付记录
func (r *orderRepository) DeletePaymentsByCustomer(ctx context.Context, custNo int64) error {
	db := getDB(ctx, r.db)
	if err := db.Where("cust_no = ?", custNo).Delete(&PaymentModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除支付记录失败")
	}
	return nil
}

// DeleteLineItemsByCustomer 删除某客户全部订单的明细行
// line_items不直接存cust_no，通过orders子查询关联
func (r *orderRepository) DeleteLineItemsByCustomer(ctx context.Context, custNo int64) error {
	db := getDB(ctx, r.db)
	subQuery := db.Session(&gorm.Session{NewDB: true}).
		Model(&OrderModel{}).Select("order_no").Where("cust_no = ?", custNo)
	if err := db.Where("order_no IN (?)", subQuery).Delete(&LineItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除订单明细失败")
	}
	return nil
}

// DeleteLineItemsBySKU 删除引用某商品的全部明细行（商品级联）
func (r *orderRepository) DeleteLineItemsBySKU(ctx context.Context, sku string) error {
	db := getDB(ctx, r.db)
	if err := db.Where("sku = ?", sku).Delete(&LineItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除订单明细失败")
	}
	return nil
}

// DeleteProcessLinksByCustomer 删除某客户订单的处理关联行
func (r *orderRepository) DeleteProcessLinksByCustomer(ctx context.Context, custNo int64) error {
	db := getDB(ctx, r.db)
	subQuery := db.Session(&gorm.Session{NewDB: true}).
		Model(&OrderModel{}).Select("order_no").Where("cust_no = ?", custNo)
	if err := db.Where("order_no IN (?)", subQuery).Delete(&ProcessModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除订单处理记录失败")
	}
	return nil
}

// DeleteOrdersByCustomer 删除某客户的全部订单行
// 必须在支付、明细、处理记录清理之后调用（子表先于父表）
func (r *orderRepository) DeleteOrdersByCustomer(ctx context.Context, custNo int64) error {
	db := getDB(ctx, r.db)
	if err := db.Where("cust_no = ?", custNo).Delete(&OrderModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除订单失败")
	}
	return nil
}
