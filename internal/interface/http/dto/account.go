package dto

import (
	"github.com/xiebiao/storefront/internal/domain/account"
)

// UpdateBalanceForm 更新余额表单（account_number来自路径参数）
type UpdateBalanceForm struct {
	Balance string `form:"balance"`
}

// AccountResponse 账户JSON响应
type AccountResponse struct {
	AccountNumber int64  `json:"account_number"`
	BranchName    string `json:"branch_name"`
	Balance       string `json:"balance"`
}

// ToAccountResponses 批量转换
func ToAccountResponses(accounts []*account.Account) []*AccountResponse {
	out := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = &AccountResponse{
			AccountNumber: a.AccountNumber,
			BranchName:    a.BranchName,
			Balance:       a.Balance.StringFixed(2),
		}
	}
	return out
}
