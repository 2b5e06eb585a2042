package domain

// Role is the closed set of admin UI roles. Role names arrive on requests at
// face value, there is no token verification behind them.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleEventManager  Role = "EventManager"
)

// ParseRole maps a raw role string to a known Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdministrator, RoleEventManager:
		return Role(s), true
	default:
		return "", false
	}
}

// CanAccessFiles reports whether a role may work with file attachments.
// Both known roles are allowed, everything else is denied.
func CanAccessFiles(role Role) bool {
	switch role {
	case RoleAdministrator, RoleEventManager:
		return true
	default:
		return false
	}
}
