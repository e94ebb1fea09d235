package dto

import (
	apporder "github.com/xiebiao/storefront/internal/application/order"
)

// PlaceOrderForm 下单表单（sku来自路径参数）
type PlaceOrderForm struct {
	CustNo string `form:"cust_no"`
	Qty    string `form:"qty"`
}

// OrderTotalResponse 订单金额JSON响应
type OrderTotalResponse struct {
	OrderNo uint64 `json:"order_no"`
	CustNo  int64  `json:"cust_no"`
	Status  string `json:"status"`
	Total   string `json:"total"`
}

// ToOrderTotalResponse 用例响应 → JSON响应
func ToOrderTotalResponse(r *apporder.OrderTotalResponse) *OrderTotalResponse {
	return &OrderTotalResponse{
		OrderNo: r.OrderNo,
		CustNo:  r.CustNo,
		Status:  r.Status,
		Total:   r.Total.StringFixed(2),
	}
}
