package identity

import (
	"fmt"
	"os"
)

// Credentials holds the two identities of a verification run.
//
// Tokens are supplied externally and are never hard-coded; in a production
// deployment they come from the environment or a mounted secret.
type Credentials struct {
	Admin  Identity
	Viewer Identity
}

// NewCredentials reads both tokens from environment variables.
func NewCredentials() *Credentials {
	return &Credentials{
		Admin: Identity{
			Name:  "admin",
			Token: os.Getenv("WEAVIATE_ADMIN_TOKEN"),
			Role:  RoleAdmin,
		},
		Viewer: Identity{
			Name:  "viewer",
			Token: os.Getenv("WEAVIATE_VIEWER_TOKEN"),
			Role:  RoleViewer,
		},
	}
}

// Validate ensures both tokens are present and distinct. Identical tokens
// would silently verify one identity twice instead of two policies.
func (c *Credentials) Validate() error {
	if c.Admin.Token == "" {
		return fmt.Errorf("identity: missing WEAVIATE_ADMIN_TOKEN")
	}
	if c.Viewer.Token == "" {
		return fmt.Errorf("identity: missing WEAVIATE_VIEWER_TOKEN")
	}
	if c.Admin.Token == c.Viewer.Token {
		return fmt.Errorf("identity: admin and viewer tokens must differ")
	}
	return nil
}
