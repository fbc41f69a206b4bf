package user

import (
	"context"
	"time"

	domainuser "github.com/Meggatr0N/bookstore-api/internal/domain/user"
	jwtpkg "github.com/Meggatr0N/bookstore-api/pkg/jwt"
)

// SessionStore 会话存储抽象
// 由Redis实现，测试时可替换为内存假实现
type SessionStore interface {
	SaveSession(ctx context.Context, userID uint, ttl time.Duration) error
	DeleteSession(ctx context.Context, userID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthService 认证应用服务
// 编排注册、登录、令牌刷新、登出四个流程，
// 领域校验交给用户领域服务，令牌签发交给JWT管理器
type AuthService struct {
	users    *domainuser.Service
	tokens   *jwtpkg.Manager
	sessions SessionStore
}

func NewAuthService(users *domainuser.Service, tokens *jwtpkg.Manager, sessions SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
	}
}
