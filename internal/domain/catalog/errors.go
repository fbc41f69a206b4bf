package catalog

import apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"

var (
	ErrAuthorNotFound   = apperrors.NotFound("Author not found")
	ErrCategoryNotFound = apperrors.NotFound("Category not found")
	ErrBookNotFound     = apperrors.NotFound("Book not found")

	// 创建图书时引用的作者/分类不存在，属于请求数据错误而非资源缺失
	ErrAuthorNotExist   = apperrors.BadRequest("Author not found")
	ErrCategoryNotExist = apperrors.BadRequest("Category not found")
)
