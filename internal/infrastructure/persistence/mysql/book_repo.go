package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
)

// BookRepo 图书仓储的MySQL实现
type BookRepo struct {
	*itemRepo[BookModel]
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{itemRepo: newItemRepo[BookModel](db, catalog.ErrBookNotFound)}
}

func (r *BookRepo) Create(ctx context.Context, b *catalog.Book) error {
	model := bookToModel(b)
	if err := r.create(ctx, model); err != nil {
		return err
	}
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *BookRepo) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	model, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return bookToEntity(model), nil
}

// List 图书分页查询
// CategoryActive过滤需要联表categories，只保留启用分类下的图书
func (r *BookRepo) List(ctx context.Context, params catalog.BookListParams) ([]*catalog.Book, int64, error) {
	models, total, err := r.list(ctx, params.Page, params.Limit, params.Desc, func(db *gorm.DB) *gorm.DB {
		if params.Name != "" {
			db = db.Where("books.name LIKE ?", "%"+params.Name+"%")
		}
		if params.AuthorID != 0 {
			db = db.Where("books.author_id = ?", params.AuthorID)
		}
		if params.CategoryID != 0 {
			db = db.Where("books.category_id = ?", params.CategoryID)
		}
		if params.IsActive != nil {
			db = db.Where("books.is_active = ?", *params.IsActive)
		}
		if params.CategoryActive {
			db = db.Joins("INNER JOIN categories ON categories.id = books.category_id").
				Where("categories.is_active = ?", true)
		}
		if params.MinPrice != nil {
			db = db.Where("books.price >= ?", *params.MinPrice)
		}
		if params.MaxPrice != nil {
			db = db.Where("books.price <= ?", *params.MaxPrice)
		}
		if params.Year != 0 {
			db = db.Where("books.year = ?", params.Year)
		}
		return db
	})
	if err != nil {
		return nil, 0, err
	}

	books := make([]*catalog.Book, len(models))
	for i := range models {
		books[i] = bookToEntity(&models[i])
	}
	return books, total, nil
}

func (r *BookRepo) UpdateFields(ctx context.Context, id uint, changes map[string]any) error {
	return r.updateFields(ctx, id, changes)
}

func (r *BookRepo) Delete(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, id)
}

func bookToModel(b *catalog.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		Name:        b.Name,
		Price:       b.Price,
		Description: b.Description,
		Year:        b.Year,
		IsActive:    b.IsActive,
		AuthorID:    b.AuthorID,
		CategoryID:  b.CategoryID,
	}
}

func bookToEntity(m *BookModel) *catalog.Book {
	return &catalog.Book{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Year:        m.Year,
		IsActive:    m.IsActive,
		AuthorID:    m.AuthorID,
		CategoryID:  m.CategoryID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
