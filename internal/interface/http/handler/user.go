package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/Meggatr0N/bookstore-api/internal/application/user"
	domainuser "github.com/Meggatr0N/bookstore-api/internal/domain/user"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/dto"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/middleware"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
	"github.com/Meggatr0N/bookstore-api/pkg/response"
)

// UserHandler 用户与认证接口
type UserHandler struct {
	auth  *appuser.AuthService
	users *domainuser.Service
}

func NewUserHandler(auth *appuser.AuthService, users *domainuser.Service) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新账号，角色固定为user
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	u, err := h.auth.Register(c.Request.Context(), domainuser.RegisterInput{
		Fullname:        req.Fullname,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewUserResponse(u))
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验邮箱密码，返回访问/刷新双令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=jwt.TokenPair}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pair)
}

// Refresh 刷新令牌
// @Summary 刷新令牌
// @Description 用刷新令牌换取新的令牌对，旧刷新令牌作废
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "刷新令牌"
// @Success 200 {object} response.Response{data=jwt.TokenPair}
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pair)
}

// Logout 用户登出
// @Summary 用户登出
// @Description 当前令牌加入黑名单并清除会话
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogoutRequest false "登出信息"
// @Success 200 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	err := h.auth.Logout(c.Request.Context(), middleware.GetUserID(c), middleware.GetAccessToken(c), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Logged out"})
}

// Profile 查看个人资料
// @Summary 查看个人资料
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 401 {object} response.Response
// @Router /api/v1/users/me [get]
func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}

// UpdateMe 修改个人资料
// @Summary 修改个人资料
// @Description 支持改姓名、邮箱、密码，密码修改需提供旧密码和两遍新密码
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSelfRequest true "修改内容"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateSelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	u, err := h.users.UpdateSelf(c.Request.Context(), middleware.GetUserID(c), domainuser.UpdateSelfInput{
		Fullname:           req.Fullname,
		Email:              req.Email,
		OldPassword:        req.OldPassword,
		NewPassword:        req.NewPassword,
		NewPasswordConfirm: req.NewPasswordConfirm,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}

// ListUsers 用户列表
// @Summary 用户列表
// @Description 管理员查询用户，支持按邮箱模糊、角色精确过滤
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param email query string false "邮箱模糊匹配"
// @Param role query string false "角色过滤"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} response.Response{data=response.PageData}
// @Failure 403 {object} response.Response
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	users, total, err := h.users.List(c.Request.Context(), domainuser.ListParams{
		Email: c.Query("email"),
		Role:  c.Query("role"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.NewUserResponseList(users), total, page, limit)
}

// GetUser 查看指定用户
// @Summary 查看指定用户
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}

// ChangeRole 调整用户角色
// @Summary 调整用户角色
// @Description 仅管理员可用
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param request body dto.ChangeRoleRequest true "目标角色"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/users/{id}/role [patch]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	role, ok := domainuser.ParseRole(req.Role)
	if !ok {
		response.Error(c, domainuser.ErrInvalidRole)
		return
	}

	u, err := h.users.ChangeRole(c.Request.Context(), id, role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewUserResponse(u))
}

// DeleteUser 删除用户
// @Summary 删除用户
// @Description 仅管理员可用
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "User deleted"})
}
