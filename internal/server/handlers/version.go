package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/fulmenhq/gofulmen/appidentity"
	"github.com/fulmenhq/gofulmen/crucible"
)

var (
	versionMu    sync.RWMutex
	appVersion   = "dev"
	appCommit    = "unknown"
	appBuildDate = "unknown"
	appIdentity  *appidentity.Identity
)

// SetVersionInfo sets the build metadata reported by /version.
func SetVersionInfo(version, commit, buildDate string) {
	versionMu.Lock()
	defer versionMu.Unlock()
	appVersion = version
	appCommit = commit
	appBuildDate = buildDate
}

// SetAppIdentity sets the app identity for the handler
func SetAppIdentity(identity *appidentity.Identity) {
	versionMu.Lock()
	defer versionMu.Unlock()
	appIdentity = identity
}

// VersionResponse represents the version information response
type VersionResponse struct {
	App          AppInfo     `json:"app" yaml:"app"`
	Dependencies DepInfo     `json:"dependencies" yaml:"dependencies"`
	Runtime      RuntimeInfo `json:"runtime" yaml:"runtime"`
}

// AppInfo contains application version details
type AppInfo struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version,omitempty" yaml:"go_version,omitempty"`
}

// DepInfo contains dependency version information
type DepInfo struct {
	Gofulmen string `json:"gofulmen" yaml:"gofulmen"`
	Crucible string `json:"crucible" yaml:"crucible"`
}

// RuntimeInfo contains runtime environment information
type RuntimeInfo struct {
	Platform      string `json:"platform" yaml:"platform"`
	NumCPU        int    `json:"num_cpu" yaml:"num_cpu"`
	NumGoroutines int    `json:"num_goroutines" yaml:"num_goroutines"`
}

// CurrentVersion assembles the version report shared by /version and the
// version command.
func CurrentVersion() VersionResponse {
	versionMu.RLock()
	defer versionMu.RUnlock()

	name := "unknown"
	if appIdentity != nil && appIdentity.BinaryName != "" {
		name = appIdentity.BinaryName
	} else if len(os.Args) > 0 && os.Args[0] != "" {
		name = filepath.Base(os.Args[0])
	}

	deps := crucible.GetVersion()
	return VersionResponse{
		App: AppInfo{
			Name:      name,
			Version:   appVersion,
			Commit:    appCommit,
			BuildDate: appBuildDate,
			GoVersion: runtime.Version(),
		},
		Dependencies: DepInfo{
			Gofulmen: deps.Gofulmen,
			Crucible: deps.Crucible,
		},
		Runtime: RuntimeInfo{
			Platform:      runtime.GOOS + "/" + runtime.GOARCH,
			NumCPU:        runtime.NumCPU(),
			NumGoroutines: runtime.NumGoroutine(),
		},
	}
}

// VersionHandler handles version information requests
func VersionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CurrentVersion())
}
