package dto

import (
	"github.com/xiebiao/storefront/internal/domain/product"
)

// AddProductForm 新增商品表单
type AddProductForm struct {
	SKU         string `form:"sku"`
	Name        string `form:"name"`
	Price       string `form:"price"`
	EAN         string `form:"ean"`
	Description string `form:"description"`
}

// EditProductForm 编辑商品表单（sku来自路径参数）
type EditProductForm struct {
	Price       string `form:"price"`
	Description string `form:"description"`
}

// RemoveProductForm 删除商品表单
type RemoveProductForm struct {
	SKU string `form:"sku"`
}

// ProductResponse 商品JSON响应
// 价格按两位小数字符串输出，避免浮点序列化误差
type ProductResponse struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	EAN         string `json:"ean,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToProductResponse 领域实体 → JSON响应
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		EAN:         p.EAN,
		Description: p.Description,
	}
}

// ToProductResponses 批量转换
func ToProductResponses(products []*product.Product) []*ProductResponse {
	out := make([]*ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}

// SupplierResponse 供应商JSON响应
type SupplierResponse struct {
	TIN     string `json:"tin"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	SKU     string `json:"sku"`
}

// ToSupplierResponses 批量转换
func ToSupplierResponses(suppliers []*product.Supplier) []*SupplierResponse {
	out := make([]*SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		out[i] = &SupplierResponse{
			TIN:     s.TIN,
			Name:    s.Name,
			Address: s.Address,
			SKU:     s.SKU,
		}
	}
	return out
}
