package user

import (
	"context"

	domainuser "github.com/Meggatr0N/bookstore-api/internal/domain/user"
)

// Register 用户注册
func (s *AuthService) Register(ctx context.Context, input domainuser.RegisterInput) (*domainuser.User, error) {
	return s.users.Register(ctx, input)
}
