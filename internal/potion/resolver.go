package potion

import (
	"fmt"
	"slices"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// TextureVariant returns the texture suffix for a potion effect code.
// Empty and unknown codes report false; callers fall back to the plain base texture.
func TextureVariant(code string) (string, bool) {
	effect, ok := Lookup(code)
	if !ok || effect.Texture == "" {
		return "", false
	}
	return effect.Texture, true
}

// Lookup returns the table entry for an effect code such as "minecraft:swiftness"
func Lookup(code string) (domain.PotionEffect, bool) {
	if code == "" {
		return domain.PotionEffect{}, false
	}
	i, ok := effectIndex[code]
	if !ok {
		return domain.PotionEffect{}, false
	}
	return effects[i], true
}

// Effects returns a copy of the effect table in table order
func Effects() []domain.PotionEffect {
	return slices.Clone(effects)
}

// IsVariantBearing reports whether the texture of id depends on a potion effect
func IsVariantBearing(id string) bool {
	return variantBearing[id]
}

// SelectCode applies the variant precedence rule: an embedded code always wins,
// even when the table does not know it; the metadata code is only used when
// nothing was embedded in the identifier.
func SelectCode(embedded, metadata string) string {
	if embedded != "" {
		return embedded
	}
	return metadata
}

// DisplayName renders the effect name with its level ("Swiftness II")
func DisplayName(effect domain.PotionEffect) string {
	if effect.Level > 1 {
		return fmt.Sprintf(LevelNameFormat, effect.Name, romanNumeral(effect.Level))
	}
	return effect.Name
}

// FormatEffect renders the effect with its duration ("Swiftness II (1:30)")
func FormatEffect(effect domain.PotionEffect) string {
	name := DisplayName(effect)
	if effect.Duration == "" {
		return name
	}
	return fmt.Sprintf(DurationFormat, name, effect.Duration)
}

func romanNumeral(n int) string {
	if n > 0 && n < len(romanNumerals) {
		return romanNumerals[n]
	}
	return fmt.Sprint(n)
}
