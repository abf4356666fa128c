package domain

import "slices"

// Role represents a user role within a bureau tenant
type Role string

const (
	// RoleAdmin manages the tenant: users, clients, settings
	RoleAdmin Role = "admin"

	// RoleConsultant runs payroll for assigned clients
	RoleConsultant Role = "consultant"

	// RoleViewer has read-only access to dashboards and reports
	RoleViewer Role = "viewer"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleConsultant, RoleViewer}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
