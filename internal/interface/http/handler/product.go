package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appproduct "github.com/xiebiao/storefront/internal/application/product"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// ProductHandler 商品HTTP处理器
type ProductHandler struct {
	addUseCase       *appproduct.AddProductUseCase
	listUseCase      *appproduct.ListProductsUseCase
	editUseCase      *appproduct.EditProductUseCase
	removeUseCase    *appproduct.RemoveProductUseCase
	suppliersUseCase *appproduct.ListSuppliersUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	addUseCase *appproduct.AddProductUseCase,
	listUseCase *appproduct.ListProductsUseCase,
	editUseCase *appproduct.EditProductUseCase,
	removeUseCase *appproduct.RemoveProductUseCase,
	suppliersUseCase *appproduct.ListSuppliersUseCase,
) *ProductHandler {
	return &ProductHandler{
		addUseCase:       addUseCase,
		listUseCase:      listUseCase,
		editUseCase:      editUseCase,
		removeUseCase:    removeUseCase,
		suppliersUseCase: suppliersUseCase,
	}
}

// ListProducts 商品列表（每页10条，走列表页缓存）
// GET /products 与 GET /products/:page
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page := pageParam(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}

	if wantsJSON(c) {
		response.SuccessWithPage(c,
			dto.ToProductResponses(result.Products),
			result.Total, result.Page, result.PageSize)
		return
	}

	c.HTML(http.StatusOK, "products.html", gin.H{
		"Products":   dto.ToProductResponses(result.Products),
		"Page":       result.Page,
		"TotalPages": result.TotalPages,
		"PrevPage":   result.Page - 1,
		"NextPage":   result.Page + 1,
	})
}

// ShowAddForm 新增商品表单页
// GET /product/add
func (h *ProductHandler) ShowAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "product_add.html", nil)
}

// AddProduct 新增商品
// POST /product/add
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var form dto.AddProductForm
	if err := c.ShouldBind(&form); err != nil {
		response.PlainError(c, "invalid form")
		return
	}

	_, err := h.addUseCase.Execute(c.Request.Context(), appproduct.AddProductRequest{
		SKU:         form.SKU,
		Name:        form.Name,
		Price:       form.Price,
		EAN:         form.EAN,
		Description: form.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/products/1")
}

// ShowEditForm 编辑商品表单页
// GET /product/:sku/edit
func (h *ProductHandler) ShowEditForm(c *gin.Context) {
	c.HTML(http.StatusOK, "product_edit.html", gin.H{
		"SKU": c.Param("sku"),
	})
}

// EditProduct 编辑商品（价格或描述，单字段生效）
// POST /product/:sku/edit
func (h *ProductHandler) EditProduct(c *gin.Context) {
	var form dto.EditProductForm
	if err := c.ShouldBind(&form); err != nil {
		response.PlainError(c, "invalid form")
		return
	}

	err := h.editUseCase.Execute(c.Request.Context(), appproduct.EditProductRequest{
		SKU:         c.Param("sku"),
		Price:       form.Price,
		Description: form.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/products/1")
}

// ShowRemoveForm 删除商品表单页
// GET /product/remove
func (h *ProductHandler) ShowRemoveForm(c *gin.Context) {
	c.HTML(http.StatusOK, "product_remove.html", nil)
}

// RemoveProduct 删除商品（级联）
// POST /product/remove
func (h *ProductHandler) RemoveProduct(c *gin.Context) {
	var form dto.RemoveProductForm
	if err := c.ShouldBind(&form); err != nil {
		response.PlainError(c, "invalid form")
		return
	}

	if err := h.removeUseCase.Execute(c.Request.Context(), form.SKU); err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/products/1")
}

// ListSuppliers 供应商列表
// GET /suppliers
func (h *ProductHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.suppliersUseCase.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	if wantsJSON(c) {
		response.Success(c, dto.ToSupplierResponses(suppliers))
		return
	}

	c.HTML(http.StatusOK, "suppliers.html", gin.H{
		"Suppliers": suppliers,
	})
}
