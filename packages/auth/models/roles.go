package models

// Available roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// GetDefaultRoles returns the roles of a newly registered user
func GetDefaultRoles() Roles {
	return Roles{RoleUser}
}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
