package account

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/account"
)

// UpdateBalanceUseCase 更新账户余额用例
type UpdateBalanceUseCase struct {
	accountRepo account.Repository
}

// NewUpdateBalanceUseCase 创建更新余额用例
func NewUpdateBalanceUseCase(accountRepo account.Repository) *UpdateBalanceUseCase {
	return &UpdateBalanceUseCase{accountRepo: accountRepo}
}

// UpdateBalanceRequest 更新余额请求DTO（表单原始值）
type UpdateBalanceRequest struct {
	AccountNumber string
	Balance       string
}

// Execute 执行更新余额
// 余额走与价格相同的金额规则（必填、数字、最多2位小数）
func (uc *UpdateBalanceUseCase) Execute(ctx context.Context, req UpdateBalanceRequest) error {
	accountNumber, err := account.ParseAccountNumber(req.AccountNumber)
	if err != nil {
		return err
	}
	balance, err := account.ParseBalance(req.Balance)
	if err != nil {
		return err
	}

	if _, err := uc.accountRepo.FindByNumber(ctx, accountNumber); err != nil {
		return err
	}

	return uc.accountRepo.UpdateBalance(ctx, accountNumber, balance)
}
