package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（业务错误码，不等于HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Status是对应的HTTP状态码（由错误分类决定，不序列化）
// 4. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Status  int    `json:"-"`       // HTTP状态码
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 返回错误对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 40xxx: 客户端错误（参数错误、业务规则校验失败、资源冲突）
// - 50xxx: 服务端错误（数据库异常、外部服务调用失败）
// 错误分类与HTTP状态码一一对应：
// Conflict→409、NotFound→404、BadRequest→400、Unauthorized→401、Forbidden→403

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 参数/业务规则错误（40000-40099）
	ErrCodeBadRequest = 40000 // 请求数据非法（通用）
	ErrCodeNoChanges  = 40001 // 差量更新为空（提交数据与库中一致）

	// 认证错误（40100-40199）
	ErrCodeUnauthorized = 40100 // 未登录
	ErrCodeInvalidToken = 40101 // Token无效（签名/scope/必需声明）
	ErrCodeTokenExpired = 40102 // Token过期

	// 权限错误（40300-40399）
	ErrCodeForbidden = 40300 // 角色权限不足

	// 资源错误（40400-40499）
	ErrCodeNotFound = 40400 // 资源不存在（通用）

	// 冲突错误（40900-40999）
	ErrCodeConflict = 40900 // 唯一字段重复
)

// =========================================
// 构造函数（按错误分类）
// =========================================

// New 创建新的AppError（指定HTTP状态码与业务错误码）
func New(status, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// BadRequest 请求数据非法（400）
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, ErrCodeBadRequest, message)
}

// BadRequestf 格式化的BadRequest
func BadRequestf(format string, args ...interface{}) *AppError {
	return BadRequest(fmt.Sprintf(format, args...))
}

// NotFound 资源不存在（404）
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, ErrCodeNotFound, message)
}

// NotFoundf 格式化的NotFound
func NotFoundf(format string, args ...interface{}) *AppError {
	return NotFound(fmt.Sprintf(format, args...))
}

// Conflict 唯一字段冲突（409）
func Conflict(message string) *AppError {
	return New(http.StatusConflict, ErrCodeConflict, message)
}

// Conflictf 格式化的Conflict
func Conflictf(format string, args ...interface{}) *AppError {
	return Conflict(fmt.Sprintf(format, args...))
}

// Unauthorized 认证失败（401）
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 权限不足（403）
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, ErrCodeForbidden, message)
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节，code用于区分错误来源
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 认证授权
	ErrUnauthorized = New(http.StatusUnauthorized, ErrCodeUnauthorized, "Not authenticated")
	ErrInvalidToken = New(http.StatusUnauthorized, ErrCodeInvalidToken, "Invalid token")
	ErrTokenExpired = New(http.StatusUnauthorized, ErrCodeTokenExpired, "Token is invalid or has expired")
	ErrForbidden    = New(http.StatusForbidden, ErrCodeForbidden, "Permission denied")

	// 差量更新为空：提交的数据与库中现有数据完全一致
	ErrNoChanges = New(http.StatusBadRequest, ErrCodeNoChanges, "Item with such data already exists")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternal, "Internal server error")
}
