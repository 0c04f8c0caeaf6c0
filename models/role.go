package models

// Role is the closed set of actor kinds. Every role comparison in the
// codebase goes through these constants; raw strings only cross the
// boundary at ParseRole.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleRider      Role = "rider"
	RoleAgent      Role = "agent"
	RoleCustomer   Role = "customer"
)

// AllRoles lists every valid role, in privilege order.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleRider, RoleAgent, RoleCustomer}

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleRider, RoleAgent, RoleCustomer:
		return Role(raw), true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }
