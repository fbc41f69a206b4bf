package user

import "context"

// ListParams 用户列表查询参数
type ListParams struct {
	Email string // 邮箱模糊匹配
	Role  string // 角色精确匹配
	Page  int
	Limit int
}

// Repository 用户仓储接口
// 设计说明：接口定义在领域层，实现在基础设施层（依赖倒置）
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, params ListParams) ([]*User, int64, error)
	UpdateFields(ctx context.Context, id uint, changes map[string]any) error
	Delete(ctx context.Context, id uint) error
}
