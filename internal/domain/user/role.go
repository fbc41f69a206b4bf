package user

import apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"

// Role 用户角色
// 角色体系：user（普通用户）→ staff（店员）→ admin（管理员）
// admin天然具备staff的全部权限，反之不成立
type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// ParseRole 解析角色字符串
// 未知角色返回false，调用方应拒绝该请求
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleStaff, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}

// Valid 校验角色是否合法
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Authorize 权限检查
// 规则：
// 1. required为admin时仅admin通过
// 2. required为staff时staff和admin通过
// 3. 其他情况一律拒绝（包括未知角色，默认关闭）
func Authorize(caller, required Role) error {
	switch required {
	case RoleAdmin:
		if caller == RoleAdmin {
			return nil
		}
	case RoleStaff:
		if caller == RoleStaff || caller == RoleAdmin {
			return nil
		}
	}
	return apperrors.ErrForbidden
}
