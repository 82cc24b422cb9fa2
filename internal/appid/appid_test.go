package appid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fulmenhq/gofulmen/appidentity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appidentityassets "github.com/namelens/domainideas/internal/assets/appidentity"
)

// resetIdentity clears the process-wide identity cache and re-registers the
// embedded copy.
func resetIdentity(t *testing.T) {
	t.Helper()
	appidentity.Reset()
	require.NoError(t, appidentity.RegisterEmbeddedIdentityYAML(appidentityassets.YAML))
	t.Cleanup(appidentity.Reset)
}

func chdirOutsideRepo(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

func TestGetFallsBackToEmbeddedIdentity(t *testing.T) {
	resetIdentity(t)
	t.Setenv(appidentity.EnvIdentityPath, "")
	chdirOutsideRepo(t)

	identity, err := Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "domainideas", identity.BinaryName)
	assert.Equal(t, "DOMAINIDEAS_", identity.EnvPrefix)
	assert.Equal(t, "DOMAINIDEAS_", EnvPrefix(context.Background()))
}

func TestGetHonoursExplicitIdentityPath(t *testing.T) {
	resetIdentity(t)
	t.Setenv(appidentity.EnvIdentityPath, filepath.Join(t.TempDir(), "missing-app.yaml"))

	_, err := Get(context.Background())
	require.Error(t, err)

	var notFound *appidentity.NotFoundError
	assert.True(t, errors.As(err, &notFound), "got %T: %v", err, err)

	assert.Equal(t, DefaultEnvPrefix, EnvPrefix(context.Background()))
}
