package dto

import (
	"time"

	"github.com/Meggatr0N/bookstore-api/internal/domain/user"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Fullname        string `json:"fullname" binding:"required,min=2,max=100" example:"John Doe"`
	Email           string `json:"email" binding:"required,email" example:"john@example.com"`
	Password        string `json:"password" binding:"required,min=8" example:"password123"`
	PasswordConfirm string `json:"password_confirm" binding:"required" example:"password123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest 登出请求，刷新令牌可选
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateSelfRequest 用户修改自身资料
// 修改密码需要同时提供旧密码和两遍新密码
type UpdateSelfRequest struct {
	Fullname           string `json:"fullname" binding:"omitempty,min=2,max=100"`
	Email              string `json:"email" binding:"omitempty,email"`
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password" binding:"omitempty,min=8"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// ChangeRoleRequest 管理员调整用户角色
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user staff admin" example:"staff"`
}

// UserResponse 用户信息响应，不携带密码
type UserResponse struct {
	ID        uint      `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Fullname:  u.Fullname,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponseList(users []*user.User) []UserResponse {
	list := make([]UserResponse, len(users))
	for i, u := range users {
		list[i] = NewUserResponse(u)
	}
	return list
}
