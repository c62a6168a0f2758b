package identity

import (
	"fmt"

	"go.uber.org/fx"
)

// FXModule provides validated Credentials to the application.
var FXModule = fx.Module(
	"identity",

	fx.Provide(
		func() (*Credentials, error) {
			creds := NewCredentials()
			if err := creds.Validate(); err != nil {
				return nil, fmt.Errorf("identity: invalid credentials: %w", err)
			}
			return creds, nil
		},
	),
)
