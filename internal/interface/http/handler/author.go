package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/dto"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
	"github.com/Meggatr0N/bookstore-api/pkg/response"
)

// AuthorHandler 作者接口
// 读操作对所有登录用户开放，写操作由路由层挂RequireRole(staff)
type AuthorHandler struct {
	catalog *catalog.Service
}

func NewAuthorHandler(svc *catalog.Service) *AuthorHandler {
	return &AuthorHandler{catalog: svc}
}

// Create 创建作者
// @Summary 创建作者
// @Tags 作者
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAuthorRequest true "作者信息"
// @Success 201 {object} response.Response{data=dto.AuthorResponse}
// @Failure 409 {object} response.Response
// @Router /api/v1/authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	a, err := h.catalog.CreateAuthor(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewAuthorResponse(a))
}

// Get 查看作者
// @Summary 查看作者
// @Tags 作者
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Success 200 {object} response.Response{data=dto.AuthorResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.catalog.GetAuthor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(a))
}

// List 作者列表
// @Summary 作者列表
// @Tags 作者
// @Produce json
// @Security BearerAuth
// @Param name query string false "名称模糊匹配"
// @Param email query string false "邮箱模糊匹配"
// @Param desc query bool false "按ID倒序"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /api/v1/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	desc, err := parseBoolQuery(c, "desc")
	if err != nil {
		response.Error(c, err)
		return
	}

	authors, total, err := h.catalog.ListAuthors(c.Request.Context(), catalog.ListParams{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Desc:  desc != nil && *desc,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewAuthorResponseList(authors), total, page, limit)
}

// Update 更新作者
// @Summary 更新作者
// @Description 差量更新，与现值完全一致的请求被拒绝
// @Tags 作者
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Param request body dto.UpdateAuthorRequest true "更新内容"
// @Success 200 {object} response.Response{data=dto.AuthorResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/authors/{id} [patch]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	a, err := h.catalog.UpdateAuthor(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewAuthorResponse(a))
}

// Delete 删除作者
// @Summary 删除作者
// @Tags 作者
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalog.DeleteAuthor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Author deleted"})
}

// ListBooks 作者名下图书
// @Summary 作者名下图书
// @Tags 作者
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} response.Response{data=response.PageData}
// @Failure 404 {object} response.Response
// @Router /api/v1/authors/{id}/books [get]
func (h *AuthorHandler) ListBooks(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, limit := parsePagination(c)

	books, total, err := h.catalog.ListBooksOfAuthor(c.Request.Context(), id, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewBookResponseList(books), total, page, limit)
}
