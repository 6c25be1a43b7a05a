package domain

import "time"

// User models an account in the identity store. A user always references
// exactly one role; reads resolve the reference into Role.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastLogin    time.Time `json:"last_login"`
	RoleID       string    `json:"role_id"`
	Role         *Role     `json:"role,omitempty"`
}

// RoleName returns the resolved role name, or the empty string when the role
// reference has not been loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
