package customer

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/customer"
)

// DefaultPageSize 客户列表每页条数
const DefaultPageSize = 2

// ListCustomersUseCase 客户列表用例
type ListCustomersUseCase struct {
	customerRepo customer.Repository
}

// NewListCustomersUseCase 创建客户列表用例
func NewListCustomersUseCase(customerRepo customer.Repository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// ListCustomersResponse 列表响应DTO
type ListCustomersResponse struct {
	Customers  []*customer.Customer
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// Execute 执行分页查询
// page≤0时按第1页处理；越界页返回空列表而非错误
func (uc *ListCustomersUseCase) Execute(ctx context.Context, page int) (*ListCustomersResponse, error) {
	if page <= 0 {
		page = 1
	}

	customers, total, err := uc.customerRepo.List(ctx, page, DefaultPageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + DefaultPageSize - 1) / DefaultPageSize)

	return &ListCustomersResponse{
		Customers:  customers,
		Total:      total,
		Page:       page,
		PageSize:   DefaultPageSize,
		TotalPages: totalPages,
	}, nil
}
