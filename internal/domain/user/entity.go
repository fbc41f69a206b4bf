package user

import "time"

// User 用户实体
// 设计说明：领域实体不包含GORM标签，保持领域层纯净
// Password字段存储bcrypt哈希，任何对外DTO都不得携带该字段
type User struct {
	ID        uint
	Fullname  string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckOwnership 判断资源是否归属当前用户
func (u *User) CheckOwnership(ownerID uint) bool {
	return u.ID == ownerID
}
