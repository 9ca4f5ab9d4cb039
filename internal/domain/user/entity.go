package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"  // Manages users and leave approvals, views aggregates
	RoleMember Role = "member" // Self check-in/out and leave requests
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return s == string(RoleAdmin) || s == string(RoleMember)
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FullName        *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the user can manage users and approve leaves
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DashboardPath returns the landing path for a role. Anything that is not
// an admin lands on the member dashboard.
func DashboardPath(role Role) string {
	if role == RoleAdmin {
		return "/admin"
	}
	return "/member"
}
