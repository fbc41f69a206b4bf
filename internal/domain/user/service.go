package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// Service 用户领域服务
// 负责注册、认证、资料维护、角色管理等核心用户逻辑
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput 注册输入
type RegisterInput struct {
	Fullname        string
	Email           string
	Password        string
	PasswordConfirm string
}

// Register 用户注册
// 流程：
// 1. 两次密码一致性校验
// 2. 邮箱统一转小写（避免大小写导致的重复账号）
// 3. 邮箱唯一性校验
// 4. bcrypt加密后入库，角色固定为user
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if input.Password != input.PasswordConfirm {
		return nil, ErrPasswordsMismatch
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountAlreadyExist
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to hash password")
	}

	u := &User{
		Fullname: input.Fullname,
		Email:    email,
		Password: string(hashed),
		Role:     RoleUser,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate 校验邮箱密码
// 邮箱不存在和密码错误返回同一个错误，防止账号枚举
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrIncorrectCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrIncorrectCredentials
	}

	return u, nil
}

// GetByID 查询用户
func (s *Service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmail 按邮箱查询用户
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// List 用户列表（仅管理侧使用）
func (s *Service) List(ctx context.Context, params ListParams) ([]*User, int64, error) {
	return s.repo.List(ctx, params)
}

// UpdateSelfInput 用户修改自身资料的输入
// 密码三件套：修改密码时OldPassword/NewPassword/NewPasswordConfirm必须同时提供
type UpdateSelfInput struct {
	Fullname           string
	Email              string
	OldPassword        string
	NewPassword        string
	NewPasswordConfirm string
}

// UpdateSelf 用户更新自身资料
// 差量更新：与当前值相同的字段不写入；若最终没有任何变化则拒绝请求
func (s *Service) UpdateSelf(ctx context.Context, id uint, input UpdateSelfInput) (*User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)

	if input.Fullname != "" && input.Fullname != current.Fullname {
		changes["fullname"] = input.Fullname
	}

	if input.Email != "" {
		email := strings.ToLower(strings.TrimSpace(input.Email))
		if email != current.Email {
			other, err := s.repo.FindByEmail(ctx, email)
			if err != nil && !errors.Is(err, ErrUserNotFound) {
				return nil, err
			}
			if other != nil {
				return nil, ErrEmailAlreadyExist
			}
			changes["email"] = email
		}
	}

	wantsPasswordChange := input.OldPassword != "" || input.NewPassword != "" || input.NewPasswordConfirm != ""
	if wantsPasswordChange {
		if input.OldPassword == "" || input.NewPassword == "" || input.NewPasswordConfirm == "" {
			return nil, ErrNotEnoughData
		}
		if err := bcrypt.CompareHashAndPassword([]byte(current.Password), []byte(input.OldPassword)); err != nil {
			return nil, ErrIncorrectOldPassword
		}
		if input.NewPassword != input.NewPasswordConfirm {
			return nil, ErrNewPasswordsMismatch
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to hash password")
		}
		changes["password"] = string(hashed)
	}

	if len(changes) == 0 {
		return nil, apperrors.ErrNoChanges
	}

	if err := s.repo.UpdateFields(ctx, id, changes); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// ChangeRole 管理员调整用户角色
func (s *Service) ChangeRole(ctx context.Context, id uint, role Role) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Role == role {
		return nil, apperrors.ErrNoChanges
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]any{"role": role.String()}); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Delete 删除用户
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
