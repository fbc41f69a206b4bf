package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Meggatr0N/bookstore-api/internal/domain/user"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
	jwtpkg "github.com/Meggatr0N/bookstore-api/pkg/jwt"
	"github.com/Meggatr0N/bookstore-api/pkg/response"
)

// gin上下文键
const (
	ctxKeyUserID      = "user_id"
	ctxKeyEmail       = "email"
	ctxKeyRole        = "role"
	ctxKeyAccessToken = "access_token"
)

// TokenBlacklist 令牌黑名单查询接口
type TokenBlacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware 认证与授权中间件
type AuthMiddleware struct {
	tokens    *jwtpkg.Manager
	blacklist TokenBlacklist
}

func NewAuthMiddleware(tokens *jwtpkg.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:    tokens,
		blacklist: blacklist,
	}
}

// RequireAuth 认证中间件
// 流程：
// 1. 提取Bearer令牌
// 2. 黑名单检查（已登出的令牌拒绝）
// 3. 按access scope解析，refresh令牌不能用来访问接口
// 4. 用户身份写入gin上下文供后续处理器使用
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		tokenString := parts[1]

		blacklisted, err := m.blacklist.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if blacklisted {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		claims, err := m.tokens.Parse(tokenString, jwtpkg.ScopeAccess)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyEmail, claims.Email)
		c.Set(ctxKeyRole, claims.Role)
		c.Set(ctxKeyAccessToken, tokenString)

		c.Next()
	}
}

// RequireRole 角色检查中间件，必须挂在RequireAuth之后
// 未知角色默认拒绝
func (m *AuthMiddleware) RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := user.ParseRole(GetRole(c))
		if !ok {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}

		if err := user.Authorize(role, required); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID 从gin上下文取当前用户ID，未认证返回0
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get(ctxKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetEmail 从gin上下文取当前用户邮箱
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxKeyEmail)
}

// GetRole 从gin上下文取当前用户角色
func GetRole(c *gin.Context) string {
	return c.GetString(ctxKeyRole)
}

// GetAccessToken 从gin上下文取原始访问令牌
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxKeyAccessToken)
}

// IsStaff 当前用户是否具备店员及以上权限
func IsStaff(c *gin.Context) bool {
	role, ok := user.ParseRole(GetRole(c))
	if !ok {
		return false
	}
	return user.Authorize(role, user.RoleStaff) == nil
}
