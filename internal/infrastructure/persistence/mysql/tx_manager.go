package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager GORM事务管理器
// 设计说明：把事务对象注入context传递给仓储，
// 仓储通过getDB自动使用事务连接，业务代码无需感知事务细节
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 在一个数据库事务中执行fn
// fn返回错误则整体回滚，返回nil则提交
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}
