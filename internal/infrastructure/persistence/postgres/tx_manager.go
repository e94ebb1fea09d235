package postgres

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键（自定义类型避免与其他包冲突）
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 支持嵌套事务(GORM自动使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// 设计说明:
// 1. fn函数内的所有Repository操作都会在同一事务中执行
// 2. fn返回error时自动ROLLBACK,返回nil时自动COMMIT
// 3. 通过context.WithValue传递事务DB
//
// 使用示例（客户级联删除）:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := orderRepo.DeletePaymentsByCustomer(ctx, custNo); err != nil {
//	        return err // 自动回滚
//	    }
//	    if err := orderRepo.DeleteLineItemsByCustomer(ctx, custNo); err != nil {
//	        return err
//	    }
//	    // ...子表先于父表
//	    return customerRepo.Delete(ctx, custNo) // nil则提交
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中
		// Repository的getDB函数会从context提取事务DB
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 事务传递机制：所有Repository都经由此函数取DB
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
