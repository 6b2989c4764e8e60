package identifier

import (
	"strings"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// Parsed is the result of splitting a raw identifier into its base item
// and an optional embedded variant code
type Parsed struct {
	BaseID  string `json:"base_id"`
	Variant string `json:"variant,omitempty"`
}

// HasVariant reports whether an embedded variant was found
func (p Parsed) HasVariant() bool {
	return p.Variant != ""
}

// Parse splits "namespace:base.variant" into {namespace:base, namespace:variant}
// when base is one of VariantBasePaths. An empty remainder still matches and
// yields the bare namespace ("minecraft:") as the variant. Anything else,
// including identifiers without a namespace, is returned unchanged as the base id.
func Parse(raw string) Parsed {
	namespace, path, ok := domain.SplitIdentifier(raw)
	if !ok {
		return Parsed{BaseID: raw}
	}

	for _, base := range VariantBasePaths {
		variant, found := strings.CutPrefix(path, base+domain.VariantSeparator)
		if !found {
			continue
		}
		return Parsed{
			BaseID:  domain.JoinIdentifier(namespace, base),
			Variant: domain.JoinIdentifier(namespace, variant),
		}
	}

	return Parsed{BaseID: raw}
}
