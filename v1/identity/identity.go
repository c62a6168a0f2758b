package identity

// Role is the authorization level attached to a credential.
type Role string

const (
	// RoleAdmin has unrestricted read/write/schema privileges.
	RoleAdmin Role = "admin"

	// RoleViewer is limited to read-only operations.
	RoleViewer Role = "viewer"
)

// Identity is one credential the verification run authenticates as.
// Provisioned externally, used for the duration of a run, never mutated.
type Identity struct {
	// Name is a human-readable identifier used in outcomes and logs.
	Name string

	// Token is the opaque bearer token presented to the service.
	Token string

	// Role is the declared authorization level of the token.
	Role Role
}

// Elevated reports whether this identity is expected to pass write and
// schema-mutation checks.
func (i Identity) Elevated() bool {
	return i.Role == RoleAdmin
}
