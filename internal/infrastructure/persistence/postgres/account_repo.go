package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/account"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// accountRepository 账户仓储实现(PostgreSQL)
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建账户仓储
func NewAccountRepository(db *gorm.DB) account.Repository {
	return &accountRepository{db: db}
}

// List 查询全部账户（按账号升序）
func (r *accountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var models []AccountModel
	db := getDB(ctx, r.db)
	if err := db.Order("account_number ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询账户列表失败")
	}

	accounts := make([]*account.Account, len(models))
	for i, m := range models {
		accounts[i] = &account.Account{
			AccountNumber: m.AccountNumber,
			BranchName:    m.BranchName,
			Balance:       m.Balance,
		}
	}
	return accounts, nil
}

// FindByNumber 根据账号查找
func (r *accountRepository) FindByNumber(ctx context.Context, accountNumber int64) (*account.Account, error) {
	var model AccountModel
	db := getDB(ctx, r.db)
	err := db.Where("account_number = ?", accountNumber).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "查询账户失败")
	}

	return &account.Account{
		AccountNumber: model.AccountNumber,
		BranchName:    model.BranchName,
		Balance:       model.Balance,
	}, nil
}

// UpdateBalance 更新账户余额
func (r *accountRepository) UpdateBalance(ctx context.Context, accountNumber int64, balance decimal.Decimal) error {
	db := getDB(ctx, r.db)
	result := db.Model(&AccountModel{}).
		Where("account_number = ?", accountNumber).
		Update("balance", balance)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新账户余额失败")
	}

	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

// Delete 删除账户
func (r *accountRepository) Delete(ctx context.Context, accountNumber int64) error {
	db := getDB(ctx, r.db)
	result := db.Where("account_number = ?", accountNumber).Delete(&AccountModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除账户失败")
	}

	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}
