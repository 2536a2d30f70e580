package domain

import "time"

// Role is the permission tier of an account. Roles are totally ordered
// Author < Admin < SuperAdmin; a higher role holds every capability of
// the roles below it.
type Role string

const (
	RoleAuthor     Role = "author"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ValidRoles contains all valid account roles.
var ValidRoles = []Role{RoleAuthor, RoleAdmin, RoleSuperAdmin}

var roleRank = map[Role]int{
	RoleAuthor:     1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	_, ok := roleRank[role]
	return ok
}

// AtLeast reports whether r sits at or above other in the role order.
// Unknown roles rank below every valid role.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// Account represents an identity in the system. Accounts are created on
// first successful authentication and are never hard-deleted.
type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
