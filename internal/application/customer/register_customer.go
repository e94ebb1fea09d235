package customer

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/customer"
)

// RegisterCustomerUseCase 客户注册用例
type RegisterCustomerUseCase struct {
	customerRepo customer.Repository
}

// NewRegisterCustomerUseCase 创建客户注册用例
func NewRegisterCustomerUseCase(customerRepo customer.Repository) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{customerRepo: customerRepo}
}

// RegisterCustomerRequest 注册请求DTO
// 所有字段都是表单原始值，校验在领域工厂方法中完成
type RegisterCustomerRequest struct {
	CustNo  string
	Name    string
	Email   string
	Phone   string
	Address string
}

// Execute 执行客户注册
// 校验失败时不触碰数据库；cust_no重复由唯一索引兜底
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, req RegisterCustomerRequest) (*customer.Customer, error) {
	c, err := customer.New(req.CustNo, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
