package models

// Role is the access level stored on a user record. Anything other than
// RoleAdmin (including the empty string) is an ordinary user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
