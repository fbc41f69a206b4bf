package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// Scope Token类型（写入到Token的scope声明，用于区分两种Token）
// 设计说明：
// 1. 使用双Token机制：Access Token（短期）+ Refresh Token（长期）
// 2. Access Token用于API鉴权，Refresh Token只能用于刷新Access Token
// 3. 验证时必须匹配scope，防止用Refresh Token直接访问业务接口
type Scope string

const (
	ScopeAccess  Scope = "access"
	ScopeRefresh Scope = "refresh"
)

// Manager JWT管理器
type Manager struct {
	secret             string        // JWT签名密钥
	accessTokenExpire  time.Duration // Access Token有效期
	refreshTokenExpire time.Duration // Refresh Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, accessTokenExpire, refreshTokenExpire time.Duration) *Manager {
	return &Manager{
		secret:             secret,
		accessTokenExpire:  accessTokenExpire,
		refreshTokenExpire: refreshTokenExpire,
	}
}

// Claims 自定义JWT Claims
// 学习要点：
// 1. 嵌入jwt.RegisteredClaims获取标准字段（exp、iat、nbf等）
// 2. 自定义字段承载身份信息（UserID、Email、Role）和scope判别符
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Scope  Scope  `json:"scope"`
	jwt.RegisteredClaims
}

// TokenPair Token对（Access + Refresh）
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"` // Access Token过期时间（秒）
}

// Generate 生成指定scope的Token
// scope未知时直接失败，防止签发无法验证的Token
func (m *Manager) Generate(userID uint, email, role string, scope Scope) (string, error) {
	var expire time.Duration
	switch scope {
	case ScopeAccess:
		expire = m.accessTokenExpire
	case ScopeRefresh:
		expire = m.refreshTokenExpire
	default:
		return "", apperrors.Unauthorized("Invalid type of token")
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Scope:  scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "bookstore-api",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to sign token")
	}
	return signed, nil
}

// GenerateTokenPair 生成Token对（登录成功后调用）
func (m *Manager) GenerateTokenPair(userID uint, email, role string) (*TokenPair, error) {
	accessToken, err := m.Generate(userID, email, role, ScopeAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, err := m.Generate(userID, email, role, ScopeRefresh)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(m.accessTokenExpire.Seconds()),
	}, nil
}

// Parse 解析并验证Token
// 验证内容：
// 1. 签名（防止伪造）与过期时间（exp）
// 2. scope必须与期望一致（Access/Refresh不可互换）
// 3. 必需的身份声明（id、email、role）必须存在
func (m *Manager) Parse(tokenString string, expected Scope) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	// scope判别：用Refresh Token访问业务接口（或反过来）一律拒绝
	if claims.Scope != expected {
		return nil, apperrors.ErrInvalidToken
	}

	// 必需声明检查
	if claims.UserID == 0 || claims.Email == "" || claims.Role == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// AccessTokenTTL 返回Access Token有效期（黑名单过期时间等场景使用）
func (m *Manager) AccessTokenTTL() time.Duration {
	return m.accessTokenExpire
}

// RefreshTokenTTL 返回Refresh Token有效期
func (m *Manager) RefreshTokenTTL() time.Duration {
	return m.refreshTokenExpire
}
