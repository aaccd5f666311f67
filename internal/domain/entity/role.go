package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser is the default role assigned at signup.
	RoleUser Role = "user"
	// RoleAdmin grants access to catalog and account management.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns r, or RoleUser when r is empty or unknown.
func RoleOrDefault(r Role) Role {
	if r.IsValid() {
		return r
	}

	return RoleUser
}
