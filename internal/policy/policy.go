// Package policy holds the two-tier role model and the capability
// predicates the HTTP layer composes at the routing boundary.
package policy

type Role string

const (
	RoleManagement Role = "management"
	RoleAccounting Role = "accounting"
)

// ValidRole reports whether s is one of the enumerated roles.
func ValidRole(s string) bool {
	return s == string(RoleManagement) || s == string(RoleAccounting)
}

type Capability string

const (
	// AccountingOrManagement is satisfied by both roles.
	AccountingOrManagement Capability = "accounting_or_management"
	// ManagementOnly is satisfied by management alone.
	ManagementOnly Capability = "management_only"
)

// CanAccess decides whether a role grants a capability. Management is a
// strict superset of accounting.
func CanAccess(role Role, cap Capability) bool {
	switch cap {
	case AccountingOrManagement:
		return role == RoleManagement || role == RoleAccounting
	case ManagementOnly:
		return role == RoleManagement
	default:
		return false
	}
}
