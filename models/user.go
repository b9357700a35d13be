package models

// Role restricts which operations a user may perform. The set is closed;
// anything outside it is rejected at signup.
type Role string

const (
	RoleWhitelistMode Role = "whitelistmode"
	RoleGangMode      Role = "gangmode"
	RoleFactionMode   Role = "factionmode"
	RoleAdminPersonel Role = "adminpersonel"
	RoleDeveloper     Role = "developer"
	RoleFounder       Role = "founder"
)

// DefaultRole is assigned when signup omits a role.
const DefaultRole = RoleWhitelistMode

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleWhitelistMode, RoleGangMode, RoleFactionMode, RoleAdminPersonel, RoleDeveloper, RoleFounder:
		return true
	}
	return false
}

// User represents an account in the portal.
// It maps to one element of the `users` collection.
//
// Password is stored and compared in plain text; that is the on-disk contract
// shared with the original deployment's data files, not a recommendation.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
