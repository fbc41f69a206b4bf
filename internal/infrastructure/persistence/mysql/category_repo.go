package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
)

// CategoryRepo 分类仓储的MySQL实现
type CategoryRepo struct {
	*itemRepo[CategoryModel]
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{itemRepo: newItemRepo[CategoryModel](db, catalog.ErrCategoryNotFound)}
}

func (r *CategoryRepo) Create(ctx context.Context, c *catalog.Category) error {
	model := categoryToModel(c)
	if err := r.create(ctx, model); err != nil {
		return err
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	model, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return categoryToEntity(model), nil
}

func (r *CategoryRepo) List(ctx context.Context, params catalog.ListParams) ([]*catalog.Category, int64, error) {
	models, total, err := r.list(ctx, params.Page, params.Limit, params.Desc, func(db *gorm.DB) *gorm.DB {
		if params.Name != "" {
			db = db.Where("name LIKE ?", "%"+params.Name+"%")
		}
		if params.IsActive != nil {
			db = db.Where("is_active = ?", *params.IsActive)
		}
		return db
	})
	if err != nil {
		return nil, 0, err
	}

	categories := make([]*catalog.Category, len(models))
	for i := range models {
		categories[i] = categoryToEntity(&models[i])
	}
	return categories, total, nil
}

func (r *CategoryRepo) UpdateFields(ctx context.Context, id uint, changes map[string]any) error {
	return r.updateFields(ctx, id, changes)
}

func (r *CategoryRepo) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

func categoryToModel(c *catalog.Category) *CategoryModel {
	return &CategoryModel{
		ID:       c.ID,
		Name:     c.Name,
		IsActive: c.IsActive,
	}
}

func categoryToEntity(m *CategoryModel) *catalog.Category {
	return &catalog.Category{
		ID:        m.ID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
