package account

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/account"
)

// ListAccountsUseCase 账户列表用例（后台余额管理页）
type ListAccountsUseCase struct {
	accountRepo account.Repository
}

// NewListAccountsUseCase 创建账户列表用例
func NewListAccountsUseCase(accountRepo account.Repository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute 查询全部账户
func (uc *ListAccountsUseCase) Execute(ctx context.Context) ([]*account.Account, error) {
	return uc.accountRepo.List(ctx)
}
