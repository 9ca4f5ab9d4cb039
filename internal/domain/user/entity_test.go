package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin", DashboardPath(RoleAdmin))
	assert.Equal(t, "/member", DashboardPath(RoleMember))
	assert.Equal(t, "/member", DashboardPath(Role("unknown")))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("member"))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}

func TestIsAdmin(t *testing.T) {
	admin := User{Role: RoleAdmin}
	member := User{Role: RoleMember}
	assert.True(t, admin.IsAdmin())
	assert.False(t, member.IsAdmin())
}
