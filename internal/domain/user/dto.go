package user

import "time"

// Profile is the wire shape for a user, shared by the profile endpoint,
// the auth responses and the admin roster.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) ToProfile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type RosterResponse struct {
	Total int       `json:"total"`
	Users []Profile `json:"users"`
}
