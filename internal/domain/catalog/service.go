package catalog

import (
	"context"
	"errors"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// Service 图书目录领域服务
// 统一管理作者、分类、图书三类资源，并维护图书对作者/分类的引用完整性
type Service struct {
	authors    AuthorRepository
	categories CategoryRepository
	books      BookRepository
}

func NewService(authors AuthorRepository, categories CategoryRepository, books BookRepository) *Service {
	return &Service{
		authors:    authors,
		categories: categories,
		books:      books,
	}
}

// ========== 作者 ==========

func (s *Service) CreateAuthor(ctx context.Context, a *Author) (*Author, error) {
	if err := s.authors.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.authors.FindByID(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	return s.authors.List(ctx, params)
}

// UpdateAuthor 差量更新作者
// 补丁与现值完全一致时拒绝，避免空更新
func (s *Service) UpdateAuthor(ctx context.Context, id uint, patch AuthorPatch) (*Author, error) {
	current, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := patch.Diff(current)
	if len(changes) == 0 {
		return nil, apperrors.ErrNoChanges
	}

	if err := s.authors.UpdateFields(ctx, id, changes); err != nil {
		return nil, err
	}

	return s.authors.FindByID(ctx, id)
}

func (s *Service) DeleteAuthor(ctx context.Context, id uint) error {
	if _, err := s.authors.FindByID(ctx, id); err != nil {
		return err
	}
	return s.authors.Delete(ctx, id)
}

// ListBooksOfAuthor 查询作者名下的图书
func (s *Service) ListBooksOfAuthor(ctx context.Context, authorID uint, page, limit int) ([]*Book, int64, error) {
	if _, err := s.authors.FindByID(ctx, authorID); err != nil {
		return nil, 0, err
	}
	return s.books.List(ctx, BookListParams{
		AuthorID: authorID,
		Page:     page,
		Limit:    limit,
	})
}

// ========== 分类 ==========

func (s *Service) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context, params ListParams) ([]*Category, int64, error) {
	return s.categories.List(ctx, params)
}

func (s *Service) UpdateCategory(ctx context.Context, id uint, patch CategoryPatch) (*Category, error) {
	current, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := patch.Diff(current)
	if len(changes) == 0 {
		return nil, apperrors.ErrNoChanges
	}

	if err := s.categories.UpdateFields(ctx, id, changes); err != nil {
		return nil, err
	}

	return s.categories.FindByID(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

// ListBooksOfCategory 查询分类下的图书
func (s *Service) ListBooksOfCategory(ctx context.Context, categoryID uint, page, limit int) ([]*Book, int64, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, 0, err
	}
	return s.books.List(ctx, BookListParams{
		CategoryID: categoryID,
		Page:       page,
		Limit:      limit,
	})
}

// ========== 图书 ==========

// CreateBook 创建图书
// 引用完整性：作者和分类必须已存在，否则按请求数据错误处理
func (s *Service) CreateBook(ctx context.Context, b *Book) (*Book, error) {
	if _, err := s.authors.FindByID(ctx, b.AuthorID); err != nil {
		if errors.Is(err, ErrAuthorNotFound) {
			return nil, ErrAuthorNotExist
		}
		return nil, err
	}

	if _, err := s.categories.FindByID(ctx, b.CategoryID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrCategoryNotExist
		}
		return nil, err
	}

	if err := s.books.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.books.FindByID(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, params BookListParams) ([]*Book, int64, error) {
	return s.books.List(ctx, params)
}

// UpdateBook 差量更新图书
// 若补丁改动了作者或分类引用，需要先校验目标存在
func (s *Service) UpdateBook(ctx context.Context, id uint, patch BookPatch) (*Book, error) {
	current, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := patch.Diff(current)
	if len(changes) == 0 {
		return nil, apperrors.ErrNoChanges
	}

	if authorID, ok := changes["author_id"].(uint); ok {
		if _, err := s.authors.FindByID(ctx, authorID); err != nil {
			if errors.Is(err, ErrAuthorNotFound) {
				return nil, ErrAuthorNotExist
			}
			return nil, err
		}
	}

	if categoryID, ok := changes["category_id"].(uint); ok {
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return nil, ErrCategoryNotExist
			}
			return nil, err
		}
	}

	if err := s.books.UpdateFields(ctx, id, changes); err != nil {
		return nil, err
	}

	return s.books.FindByID(ctx, id)
}

func (s *Service) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.books.FindByID(ctx, id); err != nil {
		return err
	}
	return s.books.Delete(ctx, id)
}
