package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
	"github.com/osse101/MinecraftItemIcon_Go/internal/identifier"
	"github.com/osse101/MinecraftItemIcon_Go/internal/localization"
	"github.com/osse101/MinecraftItemIcon_Go/internal/potion"
)

// Formatter produces human-readable item names
type Formatter interface {
	// FormatName returns the display name for an identifier. It never fails
	// and never returns an empty string.
	FormatName(id string) string

	// TitleCase converts an identifier to its title-cased fallback name
	// ("minecraft:diamond_sword" -> "Diamond Sword")
	TitleCase(id string) string
}

type formatter struct {
	localizer localization.Provider
}

// NewFormatter creates a formatter backed by a localization provider
func NewFormatter(localizer localization.Provider) Formatter {
	if localizer == nil {
		localizer = localization.Empty()
	}
	return &formatter{localizer: localizer}
}

// FormatName resolves a name in order: variant form, localized id, title case
func (f *formatter) FormatName(id string) string {
	if strings.TrimSpace(id) == "" {
		return domain.UnknownItemName
	}

	var name string
	if parsed := identifier.Parse(id); parsed.HasVariant() {
		name = f.baseName(parsed.BaseID)
		if variant := f.variantName(parsed.Variant); variant != "" {
			name = fmt.Sprintf(VariantNameFormat, name, variant)
		}
	} else if localized, ok := f.localizer.Localize(id); ok {
		name = localized
	} else {
		name = f.TitleCase(id)
	}

	if name == "" {
		return id
	}
	return name
}

func (f *formatter) baseName(baseID string) string {
	if localized, ok := f.localizer.Localize(baseID); ok {
		return localized
	}
	return f.TitleCase(baseID)
}

func (f *formatter) variantName(code string) string {
	if localized, ok := f.localizer.Localize(code); ok {
		return localized
	}
	if effect, ok := potion.Lookup(code); ok {
		return potion.DisplayName(effect)
	}
	return f.TitleCase(code)
}

// TitleCase strips the namespace, splits on underscores and whitespace and
// upper-cases the first letter of each word. The rest of each word is kept as is.
func (f *formatter) TitleCase(id string) string {
	words := strings.FieldsFunc(domain.StripNamespace(id), func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})

	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, WordSeparator)
}
