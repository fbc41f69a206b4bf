package user

import (
	"context"
	"time"

	jwtpkg "github.com/Meggatr0N/bookstore-api/pkg/jwt"
)

// Logout 用户登出
// 访问令牌和刷新令牌都加入黑名单，TTL取各自剩余有效期；
// 解析失败的令牌直接忽略（已过期的令牌本来就不可用）
func (s *AuthService) Logout(ctx context.Context, userID uint, accessToken, refreshToken string) error {
	s.revoke(ctx, accessToken, jwtpkg.ScopeAccess)
	if refreshToken != "" {
		s.revoke(ctx, refreshToken, jwtpkg.ScopeRefresh)
	}
	return s.sessions.DeleteSession(ctx, userID)
}

func (s *AuthService) revoke(ctx context.Context, token string, scope jwtpkg.Scope) {
	claims, err := s.tokens.Parse(token, scope)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	_ = s.sessions.AddToBlacklist(ctx, token, time.Until(claims.ExpiresAt.Time))
}
