package entity

import "slices"

// Role is the single authorization role carried by an account and its tokens.
type Role string

const (
	RoleUser       Role = "user"
	RoleSeller     Role = "seller"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may use the back-office endpoints.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// StaffRoles are allowed on admin routes.
var StaffRoles = Roles{RoleAdmin, RoleSuperAdmin}
