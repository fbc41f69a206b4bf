package catalog

import "context"

// ListParams 作者/分类列表查询参数
type ListParams struct {
	Name     string // 名称模糊匹配
	Email    string // 邮箱模糊匹配，仅作者有此字段
	IsActive *bool  // 启用状态过滤，仅分类有此字段
	Desc     bool   // 按ID倒序
	Page     int
	Limit    int
}

// BookListParams 图书列表查询参数
// CategoryActive为true时联表过滤，只返回所属分类处于启用状态的图书
type BookListParams struct {
	Name           string
	AuthorID       uint
	CategoryID     uint
	IsActive       *bool
	CategoryActive bool
	MinPrice       *int64
	MaxPrice       *int64
	Year           int
	Desc           bool
	Page           int
	Limit          int
}

// AuthorRepository 作者仓储接口
type AuthorRepository interface {
	Create(ctx context.Context, a *Author) error
	FindByID(ctx context.Context, id uint) (*Author, error)
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)
	UpdateFields(ctx context.Context, id uint, changes map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context, params ListParams) ([]*Category, int64, error)
	UpdateFields(ctx context.Context, id uint, changes map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// BookRepository 图书仓储接口
type BookRepository interface {
	Create(ctx context.Context, b *Book) error
	FindByID(ctx context.Context, id uint) (*Book, error)
	List(ctx context.Context, params BookListParams) ([]*Book, int64, error)
	UpdateFields(ctx context.Context, id uint, changes map[string]any) error
	Delete(ctx context.Context, id uint) error
}
