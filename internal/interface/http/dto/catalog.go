package dto

import (
	"math"
	"time"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
)

// 金额转换
// 领域层以分（int64)计价，接口层对外暴露小数金额，
// 转换只发生在这一层

// PriceToCents 小数金额转分，四舍五入
func PriceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CentsToPrice 分转小数金额
func CentsToPrice(cents int64) float64 {
	return float64(cents) / 100
}

// ========== 作者 ==========

type CreateAuthorRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100" example:"Andrew Hunt"`
	Email string `json:"email" binding:"omitempty,email" example:"andrew@example.com"`
}

func (r CreateAuthorRequest) ToEntity() *catalog.Author {
	return &catalog.Author{
		Name:  r.Name,
		Email: r.Email,
	}
}

type UpdateAuthorRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r UpdateAuthorRequest) ToPatch() catalog.AuthorPatch {
	return catalog.AuthorPatch{
		Name:  r.Name,
		Email: r.Email,
	}
}

type AuthorResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuthorResponse(a *catalog.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

func NewAuthorResponseList(authors []*catalog.Author) []AuthorResponse {
	list := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		list[i] = NewAuthorResponse(a)
	}
	return list
}

// ========== 分类 ==========

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Programming"`
	IsActive *bool  `json:"is_active"`
}

func (r CreateCategoryRequest) ToEntity() *catalog.Category {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &catalog.Category{
		Name:     r.Name,
		IsActive: isActive,
	}
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateCategoryRequest) ToPatch() catalog.CategoryPatch {
	return catalog.CategoryPatch{
		Name:     r.Name,
		IsActive: r.IsActive,
	}
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func NewCategoryResponseList(categories []*catalog.Category) []CategoryResponse {
	list := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = NewCategoryResponse(c)
	}
	return list
}

// ========== 图书 ==========

type CreateBookRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200" example:"The Pragmatic Programmer"`
	Price       float64 `json:"price" binding:"required,gt=0" example:"39.99"`
	Description string  `json:"description"`
	Year        int     `json:"year" binding:"omitempty,gte=0" example:"1999"`
	IsActive    *bool   `json:"is_active"`
	AuthorID    uint    `json:"author_id" binding:"required" example:"1"`
	CategoryID  uint    `json:"category_id" binding:"required" example:"1"`
}

func (r CreateBookRequest) ToEntity() *catalog.Book {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &catalog.Book{
		Name:        r.Name,
		Price:       PriceToCents(r.Price),
		Description: r.Description,
		Year:        r.Year,
		IsActive:    isActive,
		AuthorID:    r.AuthorID,
		CategoryID:  r.CategoryID,
	}
}

type UpdateBookRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Year        *int     `json:"year" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
	AuthorID    *uint    `json:"author_id"`
	CategoryID  *uint    `json:"category_id"`
}

func (r UpdateBookRequest) ToPatch() catalog.BookPatch {
	patch := catalog.BookPatch{
		Name:        r.Name,
		Description: r.Description,
		Year:        r.Year,
		IsActive:    r.IsActive,
		AuthorID:    r.AuthorID,
		CategoryID:  r.CategoryID,
	}
	if r.Price != nil {
		cents := PriceToCents(*r.Price)
		patch.Price = &cents
	}
	return patch
}

type BookResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Year        int       `json:"year"`
	IsActive    bool      `json:"is_active"`
	AuthorID    uint      `json:"author_id"`
	CategoryID  uint      `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBookResponse(b *catalog.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Name:        b.Name,
		Price:       CentsToPrice(b.Price),
		Description: b.Description,
		Year:        b.Year,
		IsActive:    b.IsActive,
		AuthorID:    b.AuthorID,
		CategoryID:  b.CategoryID,
		CreatedAt:   b.CreatedAt,
	}
}

func NewBookResponseList(books []*catalog.Book) []BookResponse {
	list := make([]BookResponse, len(books))
	for i, b := range books {
		list[i] = NewBookResponse(b)
	}
	return list
}
