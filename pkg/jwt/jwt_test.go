package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", time.Hour, 7*24*time.Hour)
}

func TestGenerateAndParse(t *testing.T) {
	m := newTestManager()

	token, err := m.Generate(42, "john@example.com", "staff", ScopeAccess)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token, ScopeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, ScopeAccess, claims.Scope)
}

func TestGenerateUnknownScope(t *testing.T) {
	m := newTestManager()

	_, err := m.Generate(1, "a@b.com", "user", Scope("session"))
	assert.Error(t, err)
}

func TestParseScopeMismatch(t *testing.T) {
	m := newTestManager()

	// refresh令牌不能当access令牌用
	token, err := m.Generate(1, "a@b.com", "user", ScopeRefresh)
	require.NoError(t, err)

	_, err = m.Parse(token, ScopeAccess)
	assert.Error(t, err)

	// 反方向同样拒绝
	token, err = m.Generate(1, "a@b.com", "user", ScopeAccess)
	require.NoError(t, err)

	_, err = m.Parse(token, ScopeRefresh)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, -time.Minute)

	token, err := m.Generate(1, "a@b.com", "user", ScopeAccess)
	require.NoError(t, err)

	_, err = m.Parse(token, ScopeAccess)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("other-secret", time.Hour, time.Hour)

	token, err := m.Generate(1, "a@b.com", "user", ScopeAccess)
	require.NoError(t, err)

	_, err = other.Parse(token, ScopeAccess)
	assert.Error(t, err)
}

func TestGenerateTokenPair(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateTokenPair(7, "jane@example.com", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)

	// 双令牌都携带完整身份，刷新时不需要再查访问令牌
	access, err := m.Parse(pair.AccessToken, ScopeAccess)
	require.NoError(t, err)
	refresh, err := m.Parse(pair.RefreshToken, ScopeRefresh)
	require.NoError(t, err)

	assert.Equal(t, access.UserID, refresh.UserID)
	assert.Equal(t, access.Role, refresh.Role)
}
