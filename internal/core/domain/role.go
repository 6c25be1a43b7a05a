package domain

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role is a named set of privileges. Users reference roles by ID; the set
// of users holding a role is derived by querying the user collection, never
// stored on the role itself.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
