package model

// Role is the closed set of roles an employee can carry. Authorization is
// expressed as membership checks against per-operation allowed sets owned
// by each service.
type Role string

const (
	RoleSuperAdmin Role = "ROLE_SUPER_ADMIN"
	RoleAdmin      Role = "ROLE_ADMIN"
	RoleSupervisor Role = "ROLE_SUPERVISOR"
	RoleManager    Role = "ROLE_MANAGER"
	RoleSalesman   Role = "ROLE_SALESMAN"
	RoleDealer     Role = "ROLE_DEALER"
)

// AssignableRoles are the roles that can be given to an employee at signup.
// ROLE_SUPER_ADMIN is excluded; the super admin account is seeded at boot.
var AssignableRoles = []Role{
	RoleAdmin,
	RoleSupervisor,
	RoleManager,
	RoleSalesman,
	RoleDealer,
}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleSupervisor, RoleManager, RoleSalesman, RoleDealer:
		return true
	}
	return false
}

// OneOf reports whether the role is a member of the given allowed set.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Assignable reports whether the role may be assigned through the signup flow.
func (r Role) Assignable() bool {
	return r.OneOf(AssignableRoles...)
}
