package user

import apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"

// 用户领域错误定义
// 注意：登录失败统一返回"Incorrect email or password"，不区分邮箱不存在和密码错误，
// 避免泄露账号是否存在
var (
	ErrUserNotFound         = apperrors.NotFound("User not found")
	ErrAccountAlreadyExist  = apperrors.Conflict("Account already exist")
	ErrIncorrectCredentials = apperrors.Unauthorized("Incorrect email or password")
	ErrPasswordsMismatch    = apperrors.BadRequest("Passwords do not match")
	ErrNewPasswordsMismatch = apperrors.BadRequest("New passwords do not match")
	ErrIncorrectOldPassword = apperrors.BadRequest("Incorrect old password")
	ErrNotEnoughData        = apperrors.BadRequest("Not enought data to change password!")
	ErrEmailAlreadyExist    = apperrors.Conflict("New email is already exist")
	ErrInvalidRole          = apperrors.BadRequest("Invalid role")
)
