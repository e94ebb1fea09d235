package account

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/storefront/internal/domain/account"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, postgres.AutoMigrate(db))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, number int64, balance string) {
	t.Helper()
	require.NoError(t, db.Create(&postgres.AccountModel{
		AccountNumber: number,
		BranchName:    "Main Branch",
		Balance:       decimal.RequireFromString(balance),
	}).Error)
}

func TestListAccounts(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, 2, "50.00")
	seedAccount(t, db, 1, "10.00")

	uc := NewListAccountsUseCase(postgres.NewAccountRepository(db))
	accounts, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// 按账号升序
	require.Len(t, accounts, 2)
	assert.EqualValues(t, 1, accounts[0].AccountNumber)
	assert.EqualValues(t, 2, accounts[1].AccountNumber)
}

func TestUpdateBalance(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, 1, "10.00")
	repo := postgres.NewAccountRepository(db)
	uc := NewUpdateBalanceUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, UpdateBalanceRequest{
		AccountNumber: "1", Balance: "99.50",
	}))

	a, err := repo.FindByNumber(ctx, 1)
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("99.50")))

	// 余额走金额校验规则
	err = uc.Execute(ctx, UpdateBalanceRequest{AccountNumber: "1", Balance: "1.999"})
	require.Error(t, err)
	assert.Equal(t, "balance must have at most 2 decimal places", err.Error())

	// 账户不存在
	err = uc.Execute(ctx, UpdateBalanceRequest{AccountNumber: "9", Balance: "1"})
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestRemoveAccount(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, 1, "10.00")
	repo := postgres.NewAccountRepository(db)
	uc := NewRemoveAccountUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, "1"))
	_, err := repo.FindByNumber(ctx, 1)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)

	// 再删返回not found
	err = uc.Execute(ctx, "1")
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}
