package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
)

// AuthorRepo 作者仓储的MySQL实现
type AuthorRepo struct {
	*itemRepo[AuthorModel]
}

func NewAuthorRepo(db *gorm.DB) *AuthorRepo {
	return &AuthorRepo{itemRepo: newItemRepo[AuthorModel](db, catalog.ErrAuthorNotFound)}
}

func (r *AuthorRepo) Create(ctx context.Context, a *catalog.Author) error {
	model := authorToModel(a)
	if err := r.create(ctx, model); err != nil {
		return err
	}
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AuthorRepo) FindByID(ctx context.Context, id uint) (*catalog.Author, error) {
	model, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return authorToEntity(model), nil
}

func (r *AuthorRepo) List(ctx context.Context, params catalog.ListParams) ([]*catalog.Author, int64, error) {
	models, total, err := r.list(ctx, params.Page, params.Limit, params.Desc, func(db *gorm.DB) *gorm.DB {
		if params.Name != "" {
			db = db.Where("name LIKE ?", "%"+params.Name+"%")
		}
		if params.Email != "" {
			db = db.Where("email LIKE ?", "%"+params.Email+"%")
		}
		return db
	})
	if err != nil {
		return nil, 0, err
	}

	authors := make([]*catalog.Author, len(models))
	for i := range models {
		authors[i] = authorToEntity(&models[i])
	}
	return authors, total, nil
}

func (r *AuthorRepo) UpdateFields(ctx context.Context, id uint, changes map[string]any) error {
	return r.updateFields(ctx, id, changes)
}

func (r *AuthorRepo) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

func authorToModel(a *catalog.Author) *AuthorModel {
	return &AuthorModel{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

func authorToEntity(m *AuthorModel) *catalog.Author {
	return &catalog.Author{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
