package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appaccount "github.com/xiebiao/storefront/internal/application/account"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// AccountHandler 账户HTTP处理器（后台余额管理页）
type AccountHandler struct {
	listUseCase   *appaccount.ListAccountsUseCase
	updateUseCase *appaccount.UpdateBalanceUseCase
	removeUseCase *appaccount.RemoveAccountUseCase
}

// NewAccountHandler 创建账户处理器
func NewAccountHandler(
	listUseCase *appaccount.ListAccountsUseCase,
	updateUseCase *appaccount.UpdateBalanceUseCase,
	removeUseCase *appaccount.RemoveAccountUseCase,
) *AccountHandler {
	return &AccountHandler{
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		removeUseCase: removeUseCase,
	}
}

// ListAccounts 账户列表
// GET / 与 GET /accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	if wantsJSON(c) {
		response.Success(c, dto.ToAccountResponses(accounts))
		return
	}

	c.HTML(http.StatusOK, "accounts.html", gin.H{
		"Accounts": dto.ToAccountResponses(accounts),
	})
}

// ShowUpdateForm 更新余额表单页
// GET /accounts/:account_number/update
func (h *AccountHandler) ShowUpdateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "account_update.html", gin.H{
		"AccountNumber": c.Param("account_number"),
	})
}

// UpdateBalance 更新账户余额
// POST /accounts/:account_number/update
func (h *AccountHandler) UpdateBalance(c *gin.Context) {
	var form dto.UpdateBalanceForm
	if err := c.ShouldBind(&form); err != nil {
		response.PlainError(c, "invalid form")
		return
	}

	err := h.updateUseCase.Execute(c.Request.Context(), appaccount.UpdateBalanceRequest{
		AccountNumber: c.Param("account_number"),
		Balance:       form.Balance,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/accounts")
}

// DeleteAccount 删除账户
// POST /accounts/:account_number/delete
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.removeUseCase.Execute(c.Request.Context(), c.Param("account_number")); err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/accounts")
}
