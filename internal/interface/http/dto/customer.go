package dto

import (
	"github.com/xiebiao/storefront/internal/domain/customer"
)

// AddCustomerForm 客户注册表单
// 所有字段按原始字符串接收，校验在领域层统一完成
type AddCustomerForm struct {
	CustNo  string `form:"cust_no"`
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Address string `form:"address"`
}

// RemoveCustomerForm 删除客户表单
type RemoveCustomerForm struct {
	CustNo string `form:"cust_no"`
}

// CustomerResponse 客户JSON响应
type CustomerResponse struct {
	CustNo  int64  `json:"cust_no"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToCustomerResponse 领域实体 → JSON响应
func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		CustNo:  c.CustNo,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// ToCustomerResponses 批量转换
func ToCustomerResponses(customers []*customer.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = ToCustomerResponse(c)
	}
	return out
}
