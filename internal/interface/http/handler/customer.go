package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/xiebiao/storefront/internal/application/customer"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// CustomerHandler 客户HTTP处理器
type CustomerHandler struct {
	registerUseCase *appcustomer.RegisterCustomerUseCase
	listUseCase     *appcustomer.ListCustomersUseCase
	removeUseCase   *appcustomer.RemoveCustomerUseCase
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(
	registerUseCase *appcustomer.RegisterCustomerUseCase,
	listUseCase *appcustomer.ListCustomersUseCase,
	removeUseCase *appcustomer.RemoveCustomerUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		registerUseCase: registerUseCase,
		listUseCase:     listUseCase,
		removeUseCase:   removeUseCase,
	}
}

// ListCustomers 客户列表（每页2条）
// GET /customers 与 GET /customers/:page
// 内容协商：JSON或HTML页面
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page := pageParam(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}

	if wantsJSON(c) {
		response.SuccessWithPage(c,
			dto.ToCustomerResponses(result.Customers),
			result.Total, result.Page, result.PageSize)
		return
	}

	c.HTML(http.StatusOK, "customers.html", gin.H{
		"Customers":  result.Customers,
		"Page":       result.Page,
		"TotalPages": result.TotalPages,
		"PrevPage":   result.Page - 1,
		"NextPage":   result.Page + 1,
	})
}

// ShowAddForm 客户注册表单页
// GET /customer/add
func (h *CustomerHandler) ShowAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_add.html", nil)
}

// AddCustomer 客户注册
// POST /customer/add
// 成功：302跳转客户列表；失败：纯文本说明，不产生写入
func (h *CustomerHandler) AddCustomer(c *gin.Context) {
	var form dto.AddCustomerForm
	if err := c.ShouldBind(&form); err != nil {
		response.PlainError(c, "invalid form")
		return
	}

	_, err := h.registerUseCase.Execute(c.Request.Context(), appcustomer.RegisterCustomerRequest{
		CustNo:  form.CustNo,
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/customers/1")
}

// ShowRemoveForm 删除客户表单页
// GET /customer/remove
func (h *CustomerHandler) ShowRemoveForm(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_remove.html", nil)
}

// RemoveCustomer 删除客户（级联）
// POST /customer/remove
func (h *CustomerHandler) RemoveCustomer(c *gin.Context) {
	var form dto.RemoveCustomerForm
	if err := c.ShouldBind(&form); err != nil {
		response.PlainError(c, "invalid form")
		return
	}

	if err := h.removeUseCase.Execute(c.Request.Context(), form.CustNo); err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/customers/1")
}
