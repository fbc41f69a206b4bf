package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Meggatr0N/bookstore-api/internal/domain/user"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// UserRepo 用户仓储的MySQL实现
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrAccountAlreadyExist
		}
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to create user")
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to find user")
	}
	return userToEntity(&model), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	if err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to find user")
	}
	return userToEntity(&model), nil
}

func (r *UserRepo) List(ctx context.Context, params user.ListParams) ([]*user.User, int64, error) {
	query := getDB(ctx, r.db).Model(&UserModel{})

	if params.Email != "" {
		query = query.Where("email LIKE ?", "%"+params.Email+"%")
	}
	if params.Role != "" {
		query = query.Where("role = ?", params.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to count users")
	}

	limit := normalizeLimit(params.Limit)

	var models []UserModel
	if err := query.Offset(offset(params.Page, limit)).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to list users")
	}

	users := make([]*user.User, len(models))
	for i := range models {
		users[i] = userToEntity(&models[i])
	}
	return users, total, nil
}

func (r *UserRepo) UpdateFields(ctx context.Context, id uint, changes map[string]any) error {
	result := getDB(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return user.ErrEmailAlreadyExist
		}
		return apperrors.Wrap(result.Error, apperrors.ErrCodeDatabaseError, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&UserModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.ErrCodeDatabaseError, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func userToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role.String(),
	}
}

func userToEntity(m *UserModel) *user.User {
	return &user.User{
		ID:        m.ID,
		Fullname:  m.Fullname,
		Email:     m.Email,
		Password:  m.Password,
		Role:      user.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
