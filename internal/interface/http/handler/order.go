package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/storefront/internal/application/order"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeUseCase *apporder.PlaceOrderUseCase
	totalUseCase *apporder.OrderTotalUseCase
	payUseCase   *apporder.PayOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	placeUseCase *apporder.PlaceOrderUseCase,
	totalUseCase *apporder.OrderTotalUseCase,
	payUseCase *apporder.PayOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		placeUseCase: placeUseCase,
		totalUseCase: totalUseCase,
		payUseCase:   payUseCase,
	}
}

// ShowOrderForm 下单表单页（cust_no、qty）
// GET /product/order/:sku
func (h *OrderHandler) ShowOrderForm(c *gin.Context) {
	c.HTML(http.StatusOK, "order_form.html", gin.H{
		"SKU": c.Param("sku"),
	})
}

// PlaceOrder 下单
// POST /product/order/:sku
// 成功：302跳转支付页/pay/:order_no/:cust_no；
// 失败：纯文本说明，订单与明细都不写入
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var form dto.PlaceOrderForm
	if err := c.ShouldBind(&form); err != nil {
		response.PlainError(c, "invalid form")
		return
	}

	o, err := h.placeUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		CustNo: form.CustNo,
		SKU:    c.Param("sku"),
		Qty:    form.Qty,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/pay/%d/%d", o.OrderNo, o.CustNo))
}

// ShowPayment 支付页（显示按当前价格计算的订单金额）
// GET /pay/:order_no/:cust_no
func (h *OrderHandler) ShowPayment(c *gin.Context) {
	result, err := h.totalUseCase.Execute(c.Request.Context(), c.Param("order_no"))
	if err != nil {
		fail(c, err)
		return
	}

	if wantsJSON(c) {
		response.Success(c, dto.ToOrderTotalResponse(result))
		return
	}

	c.HTML(http.StatusOK, "pay.html", gin.H{
		"OrderNo": result.OrderNo,
		"CustNo":  c.Param("cust_no"),
		"Status":  result.Status,
		"Total":   result.Total.StringFixed(2),
	})
}

// PayOrder 支付订单
// POST /pay/:order_no/:cust_no
// 已支付的订单返回"order already paid"，支付表中该订单始终至多一行
func (h *OrderHandler) PayOrder(c *gin.Context) {
	err := h.payUseCase.Execute(c.Request.Context(), apporder.PayOrderRequest{
		CustNo:  c.Param("cust_no"),
		OrderNo: c.Param("order_no"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/products/1")
}
