package user

import (
	"context"
	"time"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
	jwtpkg "github.com/Meggatr0N/bookstore-api/pkg/jwt"
)

// Refresh 刷新令牌
// 流程：
// 1. 黑名单检查，已登出的刷新令牌不可复用
// 2. 按refresh scope解析，access令牌不能用来刷新
// 3. 重新查库获取用户最新角色（管理员调整角色后下次刷新即生效）
// 4. 旧刷新令牌旋转进黑名单，防止重放
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*jwtpkg.TokenPair, error) {
	blacklisted, err := s.sessions.IsInBlacklist(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, apperrors.ErrInvalidToken
	}

	claims, err := s.tokens.Parse(refreshToken, jwtpkg.ScopeRefresh)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	pair, err := s.tokens.GenerateTokenPair(u.ID, u.Email, u.Role.String())
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt != nil {
		_ = s.sessions.AddToBlacklist(ctx, refreshToken, time.Until(claims.ExpiresAt.Time))
	}

	return pair, nil
}
