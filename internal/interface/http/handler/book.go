package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/dto"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/middleware"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
	"github.com/Meggatr0N/bookstore-api/pkg/response"
)

// BookHandler 图书接口
type BookHandler struct {
	catalog *catalog.Service
}

func NewBookHandler(svc *catalog.Service) *BookHandler {
	return &BookHandler{catalog: svc}
}

// Create 创建图书
// @Summary 创建图书
// @Description 引用的作者和分类必须已存在
// @Tags 图书
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookRequest true "图书信息"
// @Success 201 {object} response.Response{data=dto.BookResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	b, err := h.catalog.CreateBook(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(b))
}

// Get 查看图书
// @Summary 查看图书
// @Tags 图书
// @Produce json
// @Security BearerAuth
// @Param id path int true "图书ID"
// @Success 200 {object} response.Response{data=dto.BookResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.catalog.GetBook(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// List 图书列表
// @Summary 图书列表
// @Description 普通用户只能看到启用分类下的在售图书，店员可用is_active过滤查看全部
// @Tags 图书
// @Produce json
// @Security BearerAuth
// @Param name query string false "名称模糊匹配"
// @Param author_id query int false "作者过滤"
// @Param category_id query int false "分类过滤"
// @Param is_active query bool false "在售状态过滤（仅店员）"
// @Param min_price query number false "最低价"
// @Param max_price query number false "最高价"
// @Param year query int false "出版年份"
// @Param desc query bool false "按ID倒序"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	authorID, err := parseUintQuery(c, "author_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	categoryID, err := parseUintQuery(c, "category_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	minPrice, err := parsePriceQuery(c, "min_price")
	if err != nil {
		response.Error(c, err)
		return
	}
	maxPrice, err := parsePriceQuery(c, "max_price")
	if err != nil {
		response.Error(c, err)
		return
	}
	year, err := parseIntQuery(c, "year")
	if err != nil {
		response.Error(c, err)
		return
	}
	desc, err := parseBoolQuery(c, "desc")
	if err != nil {
		response.Error(c, err)
		return
	}

	params := catalog.BookListParams{
		Name:       c.Query("name"),
		AuthorID:   authorID,
		CategoryID: categoryID,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Year:       year,
		Desc:       desc != nil && *desc,
		Page:       page,
		Limit:      limit,
	}

	// 普通用户强制只看启用分类下的在售图书
	if middleware.IsStaff(c) {
		isActive, err := parseBoolQuery(c, "is_active")
		if err != nil {
			response.Error(c, err)
			return
		}
		params.IsActive = isActive
	} else {
		active := true
		params.IsActive = &active
		params.CategoryActive = true
	}

	books, total, err := h.catalog.ListBooks(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewBookResponseList(books), total, page, limit)
}

// Update 更新图书
// @Summary 更新图书
// @Description 差量更新，改动作者/分类引用时校验目标存在
// @Tags 图书
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "图书ID"
// @Param request body dto.UpdateBookRequest true "更新内容"
// @Success 200 {object} response.Response{data=dto.BookResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	b, err := h.catalog.UpdateBook(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary 删除图书
// @Tags 图书
// @Produce json
// @Security BearerAuth
// @Param id path int true "图书ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalog.DeleteBook(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Book deleted"})
}
