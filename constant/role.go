package constant

// Role is the permission tier of an account. Closed set: permission checks
// switch over these values only.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleCollector Role = "collector"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleCollector:
		return true
	}
	return false
}

// CanSubmit reports whether accounts with this role may create collection
// records.
func (r Role) CanSubmit() bool {
	return r == RoleCollector || r == RoleAdmin
}
