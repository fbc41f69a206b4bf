package user

import (
	"context"

	jwtpkg "github.com/Meggatr0N/bookstore-api/pkg/jwt"
)

// Login 用户登录
// 流程：校验凭证 → 签发访问/刷新双令牌 → 记录会话
// 会话写入失败不阻断登录，令牌本身已足以完成认证
func (s *AuthService) Login(ctx context.Context, email, password string) (*jwtpkg.TokenPair, error) {
	u, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.GenerateTokenPair(u.ID, u.Email, u.Role.String())
	if err != nil {
		return nil, err
	}

	_ = s.sessions.SaveSession(ctx, u.ID, s.tokens.RefreshTokenTTL())

	return pair, nil
}
