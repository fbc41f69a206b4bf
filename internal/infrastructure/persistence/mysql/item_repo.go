package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// itemRepo 通用CRUD仓储
// 设计说明：作者、分类、图书三类目录资源的存取逻辑完全一致，
// 用泛型收敛成一份实现，各仓储只负责模型与实体的转换及专属查询条件
type itemRepo[M any] struct {
	db       *gorm.DB
	notFound *apperrors.AppError
}

func newItemRepo[M any](db *gorm.DB, notFound *apperrors.AppError) *itemRepo[M] {
	return &itemRepo[M]{db: db, notFound: notFound}
}

// create 插入记录，唯一键冲突转换为业务冲突错误
func (r *itemRepo[M]) create(ctx context.Context, m *M) error {
	if err := getDB(ctx, r.db).Create(m).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.Conflict("Item with such name already exist")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to create record")
	}
	return nil
}

func (r *itemRepo[M]) findByID(ctx context.Context, id uint) (*M, error) {
	var m M
	if err := getDB(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to find record")
	}
	return &m, nil
}

// list 分页查询，scopes注入各资源专属的过滤条件，desc控制按ID正序或倒序
func (r *itemRepo[M]) list(ctx context.Context, page, limit int, desc bool, scopes ...func(*gorm.DB) *gorm.DB) ([]M, int64, error) {
	var m M
	query := getDB(ctx, r.db).Model(&m).Scopes(scopes...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to count records")
	}

	limit = normalizeLimit(limit)

	// 表名限定排序列，联表查询时避免id歧义
	idColumn := "id"
	if t, ok := any(&m).(interface{ TableName() string }); ok {
		idColumn = t.TableName() + ".id"
	}
	order := idColumn + " ASC"
	if desc {
		order = idColumn + " DESC"
	}

	var items []M
	if err := query.Order(order).Offset(offset(page, limit)).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to list records")
	}

	return items, total, nil
}

// updateFields 按列差量更新
func (r *itemRepo[M]) updateFields(ctx context.Context, id uint, changes map[string]any) error {
	var m M
	result := getDB(ctx, r.db).Model(&m).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return apperrors.Conflict("Item with such name already exist")
		}
		return apperrors.Wrap(result.Error, apperrors.ErrCodeDatabaseError, "failed to update record")
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

func (r *itemRepo[M]) deleteByID(ctx context.Context, id uint) error {
	var m M
	result := getDB(ctx, r.db).Delete(&m, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.ErrCodeDatabaseError, "failed to delete record")
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}
