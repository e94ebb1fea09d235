package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/customer"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// customerRepository 客户仓储实现(PostgreSQL)
// 设计说明:
// 1. 实现domain/customer/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如cust_no重复),转换为业务错误
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

// Create 创建客户
func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	// 领域实体 → GORM模型
	model := &CustomerModel{
		CustNo:  c.CustNo,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return customer.ErrCustNoDuplicate
		}
		return apperrors.Wrap(err, "创建客户失败")
	}

	c.CreatedAt = model.CreatedAt
	return nil
}

// FindByNo 根据客户编号查找客户
func (r *customerRepository) FindByNo(ctx context.Context, custNo int64) (*customer.Customer, error) {
	var model CustomerModel
	db := getDB(ctx, r.db)
	err := db.Where("cust_no = ?", custNo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询客户失败")
	}

	return toCustomerEntity(&model), nil
}

// List 分页查询客户列表（按cust_no升序，保证翻页顺序稳定）
func (r *customerRepository) List(ctx context.Context, page, pageSize int) ([]*customer.Customer, int64, error) {
	var models []CustomerModel
	var total int64

	db := getDB(ctx, r.db)
	query := db.Model(&CustomerModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询客户总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("cust_no ASC").Limit(pageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询客户列表失败")
	}

	customers := make([]*customer.Customer, len(models))
	for i := range models {
		customers[i] = toCustomerEntity(&models[i])
	}

	return customers, total, nil
}

// Delete 删除客户行本身
// 注意：级联清理（支付、明细、订单等子表）由应用层在同一事务内先行执行
func (r *customerRepository) Delete(ctx context.Context, custNo int64) error {
	db := getDB(ctx, r.db)
	result := db.Where("cust_no = ?", custNo).Delete(&CustomerModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除客户失败")
	}

	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

// toCustomerEntity GORM模型 → 领域实体
func toCustomerEntity(model *CustomerModel) *customer.Customer {
	return &customer.Customer{
		CustNo:    model.CustNo,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		Address:   model.Address,
		CreatedAt: model.CreatedAt,
	}
}
