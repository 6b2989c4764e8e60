package texture

import (
	"fmt"
	"strings"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// Version pairs a supported Minecraft release with the directory its item
// textures live in. Asset layouts differ per release, so each release gets its
// own directory under the texture base URL.
type Version struct {
	ID       string `json:"id"`
	AssetDir string `json:"asset_dir"`
}

// versions is the registry of supported releases
var versions = []Version{
	{ID: "1.16", AssetDir: "1.16.1/items"},
}

// DefaultVersion is the release used when none is configured
const DefaultVersion = "1.16"

// LookupVersion returns the registered release with the given id
func LookupVersion(id string) (Version, error) {
	for _, v := range versions {
		if v.ID == id {
			return v, nil
		}
	}
	return Version{}, fmt.Errorf("%w: %q (supported: %s)", domain.ErrUnknownVersion, id, strings.Join(SupportedVersions(), ", "))
}

// SupportedVersions lists the registered release ids
func SupportedVersions() []string {
	ids := make([]string, 0, len(versions))
	for _, v := range versions {
		ids = append(ids, v.ID)
	}
	return ids
}
