package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 认证模块集成测试
// 覆盖：注册、重复注册、登录、错误凭证、令牌刷新、登出后令牌失效

func TestRegisterAndLogin(t *testing.T) {
	requireIntegration(t)

	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("normal_user")
		resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
			"fullname":         "Normal User",
			"email":            email,
			"password":         "Test12345678",
			"password_confirm": "Test12345678",
		}, "")
		assert.Equal(t, 0, resp.Code, "注册应该成功: %s", resp.Message)

		var data UserData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotZero(t, data.ID)
		assert.Equal(t, "user", data.Role, "新用户角色固定为user")
	})

	t.Run("两次密码不一致", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
			"fullname":         "Mismatch User",
			"email":            GenerateTestEmail("mismatch"),
			"password":         "Test12345678",
			"password_confirm": "Different123",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("重复邮箱注册", func(t *testing.T) {
		email, _ := RegisterTestUser(t, "dup_user")

		resp := PostJSON(t, BaseURL+"/auth/register", map[string]string{
			"fullname":         "Dup User",
			"email":            email,
			"password":         "Test12345678",
			"password_confirm": "Test12345678",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, "Account already exist", resp.Message)
	})

	t.Run("错误密码登录", func(t *testing.T) {
		email, _ := RegisterTestUser(t, "wrong_pass")

		resp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
			"email":    email,
			"password": "WrongPassword1",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, "Incorrect email or password", resp.Message)
	})
}

func TestRefreshToken(t *testing.T) {
	requireIntegration(t)

	email, _ := RegisterTestUser(t, "refresh_user")

	loginResp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
		"email":    email,
		"password": "Test12345678",
	}, "")
	require.Equal(t, 0, loginResp.Code)

	var tokens TokenData
	require.NoError(t, json.Unmarshal(loginResp.Data, &tokens))

	t.Run("刷新令牌换新令牌对", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/refresh", map[string]string{
			"refresh_token": tokens.RefreshToken,
		}, "")
		require.Equal(t, 0, resp.Code, "刷新失败: %s", resp.Message)

		var fresh TokenData
		require.NoError(t, json.Unmarshal(resp.Data, &fresh))
		assert.NotEmpty(t, fresh.AccessToken)
		assert.NotEmpty(t, fresh.RefreshToken)
	})

	t.Run("访问令牌不能用来刷新", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/refresh", map[string]string{
			"refresh_token": tokens.AccessToken,
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("旧刷新令牌已旋转作废", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/auth/refresh", map[string]string{
			"refresh_token": tokens.RefreshToken,
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})
}

func TestLogout(t *testing.T) {
	requireIntegration(t)

	_, token := RegisterTestUser(t, "logout_user")

	// 登出前能访问个人资料
	profileResp := GetJSON(t, BaseURL+"/users/me", token)
	require.Equal(t, 0, profileResp.Code)

	logoutResp := PostJSON(t, BaseURL+"/auth/logout", nil, token)
	require.Equal(t, 0, logoutResp.Code, "登出失败: %s", logoutResp.Message)

	// 登出后同一令牌被拒绝
	profileResp = GetJSON(t, BaseURL+"/users/me", token)
	assert.NotEqual(t, 0, profileResp.Code)
}
