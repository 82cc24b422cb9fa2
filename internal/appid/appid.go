// Package appid resolves the application identity, falling back to the copy
// embedded in the binary.
package appid

import (
	"context"

	"github.com/fulmenhq/gofulmen/appidentity"

	appidentityassets "github.com/namelens/domainideas/internal/assets/appidentity"
)

// DefaultEnvPrefix is used when no identity can be loaded.
const DefaultEnvPrefix = "DOMAINIDEAS_"

func init() {
	// FULMEN_APP_IDENTITY_PATH and .fulmen/app.yaml still take precedence.
	_ = appidentity.RegisterEmbeddedIdentityYAML(appidentityassets.YAML)
}

// Get returns the resolved app identity.
func Get(ctx context.Context) (*appidentity.Identity, error) {
	return appidentity.Get(ctx)
}

// EnvPrefix returns the identity's environment variable prefix.
func EnvPrefix(ctx context.Context) string {
	identity, err := Get(ctx)
	if err != nil || identity == nil || identity.EnvPrefix == "" {
		return DefaultEnvPrefix
	}
	return identity.EnvPrefix
}
