package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 运行前提：服务已启动且连接真实的MySQL/Redis
// 默认跳过，设置 BOOKSTORE_INTEGRATION=1 后执行：
//   BOOKSTORE_INTEGRATION=1 go test -v ./test/integration/...

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// requireIntegration 未开启集成测试环境时跳过
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("BOOKSTORE_INTEGRATION") == "" {
		t.Skip("集成测试需要设置 BOOKSTORE_INTEGRATION=1")
	}
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TokenData 登录/刷新响应数据
type TokenData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// UserData 用户响应数据
type UserData struct {
	ID       uint   `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CategoryData 分类响应数据
type CategoryData struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// BookData 图书响应数据
type BookData struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	AuthorID   uint    `json:"author_id"`
	CategoryID uint    `json:"category_id"`
	IsActive   bool    `json:"is_active"`
}

// OrderData 订单响应数据
type OrderData struct {
	ID         uint            `json:"id"`
	CustomerID uint            `json:"customer_id"`
	TotalPrice float64         `json:"total_price"`
	Paid       bool            `json:"paid"`
	Complete   bool            `json:"complete"`
	Items      []OrderItemData `json:"items"`
}

// OrderItemData 订单明细响应数据
type OrderItemData struct {
	ID       uint `json:"id"`
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

// doJSON 发送带JSON体的请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// PatchJSON 发送PATCH请求
func PatchJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPatch, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// uniqueName 生成唯一名称，避免重复运行时撞唯一索引
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// RegisterTestUser 注册测试用户并返回令牌
func RegisterTestUser(t *testing.T, fullname string) (email string, token string) {
	t.Helper()

	email = GenerateTestEmail(fullname)
	registerReq := map[string]string{
		"fullname":         fullname,
		"email":            email,
		"password":         "Test12345678",
		"password_confirm": "Test12345678",
	}

	registerResp := PostJSON(t, BaseURL+"/auth/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test12345678",
	}

	loginResp := PostJSON(t, BaseURL+"/auth/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var tokens TokenData
	err := json.Unmarshal(loginResp.Data, &tokens)
	require.NoError(t, err, "解析登录响应失败")

	return email, tokens.AccessToken
}

// StaffToken 获取店员令牌
// 需要事先在库里准备好店员账号，账号密码通过环境变量传入
func StaffToken(t *testing.T) string {
	t.Helper()

	email := os.Getenv("BOOKSTORE_STAFF_EMAIL")
	password := os.Getenv("BOOKSTORE_STAFF_PASSWORD")
	if email == "" || password == "" {
		t.Skip("店员测试需要设置 BOOKSTORE_STAFF_EMAIL / BOOKSTORE_STAFF_PASSWORD")
	}

	loginResp := PostJSON(t, BaseURL+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, 0, loginResp.Code, "店员登录失败: %s", loginResp.Message)

	var tokens TokenData
	err := json.Unmarshal(loginResp.Data, &tokens)
	require.NoError(t, err)

	return tokens.AccessToken
}

// CreateTestBook 创建测试图书（连带作者和分类），返回图书ID
func CreateTestBook(t *testing.T, staffToken string, price float64) uint {
	t.Helper()

	authorResp := PostJSON(t, BaseURL+"/authors", map[string]string{
		"name": uniqueName("author"),
	}, staffToken)
	require.Equal(t, 0, authorResp.Code, "创建作者失败: %s", authorResp.Message)

	var author AuthorData
	require.NoError(t, json.Unmarshal(authorResp.Data, &author))

	categoryResp := PostJSON(t, BaseURL+"/categories", map[string]interface{}{
		"name": uniqueName("category"),
	}, staffToken)
	require.Equal(t, 0, categoryResp.Code, "创建分类失败: %s", categoryResp.Message)

	var category CategoryData
	require.NoError(t, json.Unmarshal(categoryResp.Data, &category))

	bookResp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"name":        uniqueName("book"),
		"price":       price,
		"author_id":   author.ID,
		"category_id": category.ID,
	}, staffToken)
	require.Equal(t, 0, bookResp.Code, "创建图书失败: %s", bookResp.Message)

	var book BookData
	require.NoError(t, json.Unmarshal(bookResp.Data, &book))

	return book.ID
}
