package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// fakeUserRepo 内存版用户仓储
type fakeUserRepo struct {
	users  map[uint]*User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrAccountAlreadyExist
		}
	}
	u.ID = r.nextID
	r.nextID++
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, _ ListParams) ([]*User, int64, error) {
	list := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

func (r *fakeUserRepo) UpdateFields(_ context.Context, id uint, changes map[string]any) error {
	u, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	if v, ok := changes["fullname"].(string); ok {
		u.Fullname = v
	}
	if v, ok := changes["email"].(string); ok {
		u.Email = v
	}
	if v, ok := changes["password"].(string); ok {
		u.Password = v
	}
	if v, ok := changes["role"].(string); ok {
		u.Role = Role(v)
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func registerTestUser(t *testing.T, svc *Service) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Fullname:        "John Doe",
		Email:           "john@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	u := registerTestUser(t, svc)

	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleUser, u.Role)
	// 密码必须已被bcrypt加密
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Fullname:        "John Doe",
		Email:           "john@example.com",
		Password:        "password123",
		PasswordConfirm: "password456",
	})
	assert.ErrorIs(t, err, ErrPasswordsMismatch)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	registerTestUser(t, svc)

	// 邮箱大小写不同仍然算重复
	_, err := svc.Register(context.Background(), RegisterInput{
		Fullname:        "Johnny",
		Email:           "John@Example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	assert.ErrorIs(t, err, ErrAccountAlreadyExist)
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	registerTestUser(t, svc)

	u, err := svc.Authenticate(context.Background(), "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", u.Email)

	// 密码错误和邮箱不存在返回同一个错误
	_, err = svc.Authenticate(context.Background(), "john@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrIncorrectCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrIncorrectCredentials)
}

func TestUpdateSelf(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	u := registerTestUser(t, svc)

	t.Run("修改姓名", func(t *testing.T) {
		updated, err := svc.UpdateSelf(context.Background(), u.ID, UpdateSelfInput{
			Fullname: "John Smith",
		})
		require.NoError(t, err)
		assert.Equal(t, "John Smith", updated.Fullname)
	})

	t.Run("无变化的请求被拒绝", func(t *testing.T) {
		_, err := svc.UpdateSelf(context.Background(), u.ID, UpdateSelfInput{
			Fullname: "John Smith",
		})
		assert.ErrorIs(t, err, apperrors.ErrNoChanges)
	})

	t.Run("改密码缺少旧密码", func(t *testing.T) {
		_, err := svc.UpdateSelf(context.Background(), u.ID, UpdateSelfInput{
			NewPassword:        "newpassword1",
			NewPasswordConfirm: "newpassword1",
		})
		assert.ErrorIs(t, err, ErrNotEnoughData)
	})

	t.Run("旧密码错误", func(t *testing.T) {
		_, err := svc.UpdateSelf(context.Background(), u.ID, UpdateSelfInput{
			OldPassword:        "wrong",
			NewPassword:        "newpassword1",
			NewPasswordConfirm: "newpassword1",
		})
		assert.ErrorIs(t, err, ErrIncorrectOldPassword)
	})

	t.Run("两遍新密码不一致", func(t *testing.T) {
		_, err := svc.UpdateSelf(context.Background(), u.ID, UpdateSelfInput{
			OldPassword:        "password123",
			NewPassword:        "newpassword1",
			NewPasswordConfirm: "newpassword2",
		})
		assert.ErrorIs(t, err, ErrNewPasswordsMismatch)
	})

	t.Run("成功改密码", func(t *testing.T) {
		_, err := svc.UpdateSelf(context.Background(), u.ID, UpdateSelfInput{
			OldPassword:        "password123",
			NewPassword:        "newpassword1",
			NewPasswordConfirm: "newpassword1",
		})
		require.NoError(t, err)

		_, err = svc.Authenticate(context.Background(), "john@example.com", "newpassword1")
		assert.NoError(t, err)
	})
}

func TestUpdateSelfEmailTaken(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	u := registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), RegisterInput{
		Fullname:        "Jane Doe",
		Email:           "jane@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	require.NoError(t, err)

	_, err = svc.UpdateSelf(context.Background(), u.ID, UpdateSelfInput{
		Email: "jane@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExist)
}

func TestChangeRole(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	u := registerTestUser(t, svc)

	updated, err := svc.ChangeRole(context.Background(), u.ID, RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, updated.Role)

	// 相同角色视为无变化
	_, err = svc.ChangeRole(context.Background(), u.ID, RoleStaff)
	assert.ErrorIs(t, err, apperrors.ErrNoChanges)

	// 未知角色拒绝
	_, err = svc.ChangeRole(context.Background(), u.ID, Role("owner"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}
