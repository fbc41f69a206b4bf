package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// 内存版仓储，三类资源共用一套实现思路

type fakeAuthorRepo struct {
	items  map[uint]*Author
	nextID uint
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{items: make(map[uint]*Author), nextID: 1}
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *Author) error {
	for _, existing := range r.items {
		if existing.Name == a.Name {
			return apperrors.Conflict("Item with such name already exist")
		}
	}
	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.items[a.ID] = &copied
	return nil
}

func (r *fakeAuthorRepo) FindByID(_ context.Context, id uint) (*Author, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAuthorRepo) List(_ context.Context, _ ListParams) ([]*Author, int64, error) {
	list := make([]*Author, 0, len(r.items))
	for _, a := range r.items {
		copied := *a
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

func (r *fakeAuthorRepo) UpdateFields(_ context.Context, id uint, changes map[string]any) error {
	a, ok := r.items[id]
	if !ok {
		return ErrAuthorNotFound
	}
	if v, ok := changes["name"].(string); ok {
		a.Name = v
	}
	if v, ok := changes["email"].(string); ok {
		a.Email = v
	}
	return nil
}

func (r *fakeAuthorRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return ErrAuthorNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeCategoryRepo struct {
	items  map[uint]*Category
	nextID uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[uint]*Category), nextID: 1}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *Category) error {
	c.ID = r.nextID
	r.nextID++
	copied := *c
	r.items[c.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) List(_ context.Context, _ ListParams) ([]*Category, int64, error) {
	list := make([]*Category, 0, len(r.items))
	for _, c := range r.items {
		copied := *c
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

func (r *fakeCategoryRepo) UpdateFields(_ context.Context, id uint, changes map[string]any) error {
	c, ok := r.items[id]
	if !ok {
		return ErrCategoryNotFound
	}
	if v, ok := changes["name"].(string); ok {
		c.Name = v
	}
	if v, ok := changes["is_active"].(bool); ok {
		c.IsActive = v
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return ErrCategoryNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeBookRepo struct {
	items  map[uint]*Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{items: make(map[uint]*Book), nextID: 1}
}

func (r *fakeBookRepo) Create(_ context.Context, b *Book) error {
	b.ID = r.nextID
	r.nextID++
	copied := *b
	r.items[b.ID] = &copied
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*Book, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookRepo) List(_ context.Context, params BookListParams) ([]*Book, int64, error) {
	list := make([]*Book, 0, len(r.items))
	for _, b := range r.items {
		if params.AuthorID != 0 && b.AuthorID != params.AuthorID {
			continue
		}
		if params.CategoryID != 0 && b.CategoryID != params.CategoryID {
			continue
		}
		copied := *b
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

func (r *fakeBookRepo) UpdateFields(_ context.Context, id uint, changes map[string]any) error {
	b, ok := r.items[id]
	if !ok {
		return ErrBookNotFound
	}
	if v, ok := changes["name"].(string); ok {
		b.Name = v
	}
	if v, ok := changes["price"].(int64); ok {
		b.Price = v
	}
	if v, ok := changes["author_id"].(uint); ok {
		b.AuthorID = v
	}
	if v, ok := changes["category_id"].(uint); ok {
		b.CategoryID = v
	}
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return ErrBookNotFound
	}
	delete(r.items, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *Author, *Category) {
	t.Helper()
	svc := NewService(newFakeAuthorRepo(), newFakeCategoryRepo(), newFakeBookRepo())

	author, err := svc.CreateAuthor(context.Background(), &Author{Name: "Andrew Hunt"})
	require.NoError(t, err)

	category, err := svc.CreateCategory(context.Background(), &Category{Name: "Programming", IsActive: true})
	require.NoError(t, err)

	return svc, author, category
}

func TestCreateBook(t *testing.T) {
	svc, author, category := newTestService(t)

	b, err := svc.CreateBook(context.Background(), &Book{
		Name:       "The Pragmatic Programmer",
		Price:      3999,
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
}

func TestCreateBookInvalidReferences(t *testing.T) {
	svc, author, category := newTestService(t)

	// 作者不存在算请求数据错误
	_, err := svc.CreateBook(context.Background(), &Book{
		Name:       "Ghost Book",
		Price:      1000,
		AuthorID:   999,
		CategoryID: category.ID,
	})
	assert.ErrorIs(t, err, ErrAuthorNotExist)

	_, err = svc.CreateBook(context.Background(), &Book{
		Name:       "Ghost Book",
		Price:      1000,
		AuthorID:   author.ID,
		CategoryID: 999,
	})
	assert.ErrorIs(t, err, ErrCategoryNotExist)
}

func TestUpdateBook(t *testing.T) {
	svc, author, category := newTestService(t)

	b, err := svc.CreateBook(context.Background(), &Book{
		Name:       "The Pragmatic Programmer",
		Price:      3999,
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	t.Run("改价格", func(t *testing.T) {
		updated, err := svc.UpdateBook(context.Background(), b.ID, BookPatch{Price: int64Ptr(4999)})
		require.NoError(t, err)
		assert.Equal(t, int64(4999), updated.Price)
	})

	t.Run("无变化的补丁被拒绝", func(t *testing.T) {
		_, err := svc.UpdateBook(context.Background(), b.ID, BookPatch{Price: int64Ptr(4999)})
		assert.ErrorIs(t, err, apperrors.ErrNoChanges)
	})

	t.Run("改到不存在的分类被拒绝", func(t *testing.T) {
		_, err := svc.UpdateBook(context.Background(), b.ID, BookPatch{CategoryID: uintPtr(999)})
		assert.ErrorIs(t, err, ErrCategoryNotExist)
	})
}

func TestUpdateAuthorNoChanges(t *testing.T) {
	svc, author, _ := newTestService(t)

	_, err := svc.UpdateAuthor(context.Background(), author.ID, AuthorPatch{
		Name: strPtr("Andrew Hunt"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNoChanges)
}

func TestListBooksOfAuthor(t *testing.T) {
	svc, author, category := newTestService(t)

	_, err := svc.CreateBook(context.Background(), &Book{
		Name:       "Book One",
		Price:      1000,
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	books, total, err := svc.ListBooksOfAuthor(context.Background(), author.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, books, 1)

	// 作者不存在直接报错，不返回空列表
	_, _, err = svc.ListBooksOfAuthor(context.Background(), 999, 1, 10)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}
