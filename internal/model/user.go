package model

// User represents a member of the fixed user set. Users are seeded at
// startup and never created or modified at runtime.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Role is a user's access level.
type Role string

// Roles.
const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Admin reports whether the role grants access to the admin pages.
func (r Role) Admin() bool {
	return r == RoleAdmin
}
