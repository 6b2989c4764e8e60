package texture

import (
	"strings"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
	"github.com/osse101/MinecraftItemIcon_Go/internal/identifier"
	"github.com/osse101/MinecraftItemIcon_Go/internal/potion"
)

// FileExtension is appended to every texture file name
const FileExtension = ".png"

// Composer builds texture paths for one release. It holds no mutable state and
// is safe for concurrent use.
type Composer struct {
	version Version
}

// NewComposer creates a composer for the given release
func NewComposer(version Version) *Composer {
	return &Composer{version: version}
}

// Version returns the release this composer builds paths for
func (c *Composer) Version() Version {
	return c.version
}

// ComposePath returns "{baseURL}/{assetDir}/{namespace}_{path}[_{variant}].png".
//
// A variant embedded in id ("minecraft:potion.swiftness") takes precedence over
// metadataVariant. An empty baseURL yields a root-relative path. The result is
// never checked for existence.
func (c *Composer) ComposePath(id, metadataVariant, baseURL string) string {
	parsed := identifier.Parse(id)
	normalized := identifier.Remap(parsed.BaseID)

	// Variant applicability follows the identity before remapping
	if potion.IsVariantBearing(parsed.BaseID) {
		code := potion.SelectCode(parsed.Variant, metadataVariant)
		if variant, ok := potion.TextureVariant(code); ok {
			normalized = normalized + domain.FileNameSeparator + variant
		}
	}

	fileName := strings.Replace(normalized, domain.NamespaceSeparator, domain.FileNameSeparator, 1)

	var b strings.Builder
	b.Grow(len(baseURL) + len(c.version.AssetDir) + len(fileName) + len(FileExtension) + 2)
	b.WriteString(baseURL)
	b.WriteString("/")
	b.WriteString(c.version.AssetDir)
	b.WriteString("/")
	b.WriteString(fileName)
	b.WriteString(FileExtension)
	return b.String()
}
