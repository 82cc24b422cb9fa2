package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBinary compiles the CLI and copies it into a directory with no
// .fulmen/app.yaml so only the embedded identity is available.
func buildBinary(t *testing.T) (binary, workDir string) {
	t.Helper()

	goMod, err := exec.Command("go", "env", "GOMOD").Output()
	require.NoError(t, err, "go env GOMOD")
	repoRoot := filepath.Dir(strings.TrimSpace(string(goMod)))
	require.NotEqual(t, ".", repoRoot, "go env GOMOD returned empty")

	built := filepath.Join(t.TempDir(), "domainideas")
	build := exec.Command("go", "build", "-o", built, "./cmd/domainideas")
	build.Dir = repoRoot
	build.Env = os.Environ()
	out, err := build.CombinedOutput()
	require.NoError(t, err, "go build:\n%s", out)

	workDir = t.TempDir()
	binary = filepath.Join(workDir, "domainideas")
	data, err := os.ReadFile(built)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(binary, data, 0o755))
	return binary, workDir
}

func run(t *testing.T, binary, dir string, args ...string) string {
	t.Helper()
	command := exec.Command(binary, args...)
	command.Dir = dir
	command.Env = append(os.Environ(), "FULMEN_APP_IDENTITY_PATH=")
	out, err := command.CombinedOutput()
	require.NoError(t, err, "%s %v:\n%s", filepath.Base(binary), args, out)
	return string(out)
}

func TestStandaloneBinaryRunsOutsideRepo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("standalone binary copy/exec test is unix-focused")
	}
	if testing.Short() {
		t.Skip("builds the binary")
	}

	binary, dir := buildBinary(t)

	help := run(t, binary, dir, "--help")
	assert.Contains(t, help, "suggest")
	assert.Contains(t, help, "serve")

	var version struct {
		App struct {
			Name string `json:"name"`
		} `json:"app"`
	}
	require.NoError(t, json.Unmarshal([]byte(run(t, binary, dir, "version", "-o", "json")), &version))
	assert.Equal(t, "domainideas", version.App.Name)

	ideas := run(t, binary, dir, "ideas", "tea", "--tld", "io", "--max", "5", "-o", "json")
	assert.Contains(t, ideas, "tea")
}
