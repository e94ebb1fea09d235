package account

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/account"
)

// RemoveAccountUseCase 删除账户用例
// 账户没有子表，无需级联清理
type RemoveAccountUseCase struct {
	accountRepo account.Repository
}

// NewRemoveAccountUseCase 创建删除账户用例
func NewRemoveAccountUseCase(accountRepo account.Repository) *RemoveAccountUseCase {
	return &RemoveAccountUseCase{accountRepo: accountRepo}
}

// Execute 执行删除账户
func (uc *RemoveAccountUseCase) Execute(ctx context.Context, rawAccountNumber string) error {
	accountNumber, err := account.ParseAccountNumber(rawAccountNumber)
	if err != nil {
		return err
	}

	if _, err := uc.accountRepo.FindByNumber(ctx, accountNumber); err != nil {
		return err
	}

	return uc.accountRepo.Delete(ctx, accountNumber)
}
