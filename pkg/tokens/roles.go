package tokens

// Role is the authorization level baked into a session token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Capability names an operation a caller may be granted. Authorization is a
// capability lookup, never a raw string comparison on the role.
type Capability string

const (
	// CapListUsers gates the admin-only user listing.
	CapListUsers Capability = "users:list"
)

var grants = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapListUsers: true,
	},
	RoleUser: {},
}

func (r Role) Can(cap Capability) bool {
	return grants[r][cap]
}

// Known reports whether the role is one the platform issues.
func (r Role) Known() bool {
	_, ok := grants[r]
	return ok
}
