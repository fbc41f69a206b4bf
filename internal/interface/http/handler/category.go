package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/dto"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
	"github.com/Meggatr0N/bookstore-api/pkg/response"
)

// CategoryHandler 分类接口
type CategoryHandler struct {
	catalog *catalog.Service
}

func NewCategoryHandler(svc *catalog.Service) *CategoryHandler {
	return &CategoryHandler{catalog: svc}
}

// Create 创建分类
// @Summary 创建分类
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategoryRequest true "分类信息"
// @Success 201 {object} response.Response{data=dto.CategoryResponse}
// @Failure 409 {object} response.Response
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	cat, err := h.catalog.CreateCategory(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewCategoryResponse(cat))
}

// Get 查看分类
// @Summary 查看分类
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response{data=dto.CategoryResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cat, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCategoryResponse(cat))
}

// List 分类列表
// @Summary 分类列表
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param name query string false "名称模糊匹配"
// @Param is_active query bool false "启用状态过滤"
// @Param desc query bool false "按ID倒序"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		response.Error(c, err)
		return
	}
	desc, err := parseBoolQuery(c, "desc")
	if err != nil {
		response.Error(c, err)
		return
	}

	categories, total, err := h.catalog.ListCategories(c.Request.Context(), catalog.ListParams{
		Name:     c.Query("name"),
		IsActive: isActive,
		Desc:     desc != nil && *desc,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewCategoryResponseList(categories), total, page, limit)
}

// Update 更新分类
// @Summary 更新分类
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param request body dto.UpdateCategoryRequest true "更新内容"
// @Success 200 {object} response.Response{data=dto.CategoryResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	cat, err := h.catalog.UpdateCategory(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewCategoryResponse(cat))
}

// Delete 删除分类
// @Summary 删除分类
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Category deleted"})
}

// ListBooks 分类下图书
// @Summary 分类下图书
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} response.Response{data=response.PageData}
// @Failure 404 {object} response.Response
// @Router /api/v1/categories/{id}/books [get]
func (h *CategoryHandler) ListBooks(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, limit := parsePagination(c)

	books, total, err := h.catalog.ListBooksOfCategory(c.Request.Context(), id, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewBookResponseList(books), total, page, limit)
}
