package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/MinecraftItemIcon_Go/internal/texture"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version          string `json:"version"`
	GoVersion        string `json:"go_version"`
	BuildTime        string `json:"build_time,omitempty"`
	GitCommit        string `json:"git_commit,omitempty"`
	MinecraftVersion string `json:"minecraft_version"`
	TextureDir       string `json:"texture_dir"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns build information and the Minecraft release textures resolve against
// @Summary Version information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(release texture.Version) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:          getVersionInfo(),
			GoVersion:        runtime.Version(),
			BuildTime:        BuildTime,
			GitCommit:        GitCommit,
			MinecraftVersion: release.ID,
			TextureDir:       release.AssetDir,
		})
	}
}

// getVersionInfo prefers the build-time version over the VERSION env var
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
