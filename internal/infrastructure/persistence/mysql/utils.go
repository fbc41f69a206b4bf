package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// txKey 事务在context中的键
type txKey struct{}

// getDB 从context中取事务连接，没有则用默认连接
// 事务管理器会把*gorm.DB事务对象注入context，
// 仓储通过该函数自动感知事务边界
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// isDuplicateError 判断是否为唯一键冲突
// GORM开启TranslateError后返回gorm.ErrDuplicatedKey，
// 字符串匹配兜底老版本驱动
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}

// offset 计算分页偏移量
func offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// normalizeLimit 限制每页条数
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}
