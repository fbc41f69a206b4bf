package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		caller   Role
		required Role
		allowed  bool
	}{
		{"admin访问admin接口", RoleAdmin, RoleAdmin, true},
		{"admin访问staff接口", RoleAdmin, RoleStaff, true},
		{"staff访问staff接口", RoleStaff, RoleStaff, true},
		{"staff访问admin接口", RoleStaff, RoleAdmin, false},
		{"user访问staff接口", RoleUser, RoleStaff, false},
		{"user访问admin接口", RoleUser, RoleAdmin, false},
		{"未知角色一律拒绝", Role("superuser"), RoleStaff, false},
		{"空角色拒绝", Role(""), RoleStaff, false},
		{"未知required拒绝所有人", RoleAdmin, Role("owner"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.required)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"user", "staff", "admin"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, role.String())
	}

	for _, invalid := range []string{"", "root", "Admin", "USER"} {
		_, ok := ParseRole(invalid)
		assert.False(t, ok, "角色 %q 不应被接受", invalid)
	}
}
