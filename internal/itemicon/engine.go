// Package itemicon resolves Minecraft item identifiers to texture paths and
// display names, and searches the item catalogue.
//
// An Engine is built once from immutable tables and is safe for concurrent use.
// None of the resolution methods fail: unknown items degrade to generic paths
// and title-cased names.
package itemicon

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/osse101/MinecraftItemIcon_Go/internal/catalogue"
	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
	"github.com/osse101/MinecraftItemIcon_Go/internal/fallback"
	"github.com/osse101/MinecraftItemIcon_Go/internal/identifier"
	"github.com/osse101/MinecraftItemIcon_Go/internal/localization"
	"github.com/osse101/MinecraftItemIcon_Go/internal/naming"
	"github.com/osse101/MinecraftItemIcon_Go/internal/potion"
	"github.com/osse101/MinecraftItemIcon_Go/internal/search"
	"github.com/osse101/MinecraftItemIcon_Go/internal/texture"
)

// Metadata is the optional per-item data accompanying an identifier.
// An empty Variant means none was supplied.
type Metadata struct {
	Variant string `json:"variant,omitempty"`
}

// Engine exposes the resolution operations over one catalogue, one
// localization table and one release
type Engine struct {
	catalogue catalogue.Provider
	formatter naming.Formatter
	composer  *texture.Composer
}

// New creates an engine. A nil localizer behaves like an empty table.
// Typed nil pointers count as nil for both providers.
func New(cat catalogue.Provider, localizer localization.Provider, version string) (*Engine, error) {
	if isNil(cat) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogueUnavailable, ErrMsgNilCatalogue)
	}

	v, err := texture.LookupVersion(version)
	if err != nil {
		return nil, err
	}

	if isNil(localizer) {
		localizer = nil
	}

	return &Engine{
		catalogue: cat,
		formatter: naming.NewFormatter(localizer),
		composer:  texture.NewComposer(v),
	}, nil
}

// ResolveTexturePath returns the texture location for id.
// See texture.Composer.ComposePath for the path layout.
func (e *Engine) ResolveTexturePath(id string, meta Metadata, baseURL string) string {
	return e.composer.ComposePath(id, meta.Variant, baseURL)
}

// FormatDisplayName returns a human-readable name for id
func (e *Engine) FormatDisplayName(id string) string {
	return e.formatter.FormatName(id)
}

// SearchCatalogue yields catalogue ids matching query in catalogue order
func (e *Engine) SearchCatalogue(query string) iter.Seq[string] {
	return search.Filter(query, e.catalogue.AllIdentifiers(), e.formatter.FormatName)
}

// ParseVariantIdentifier splits an id carrying an embedded variant
func (e *Engine) ParseVariantIdentifier(id string) identifier.Parsed {
	return identifier.Parse(id)
}

// Entry returns the catalogue entry for id
func (e *Engine) Entry(id string) (domain.CatalogueEntry, error) {
	entry, ok := e.catalogue.Entry(id)
	if !ok {
		return domain.CatalogueEntry{}, fmt.Errorf("%w: %q", domain.ErrItemNotFound, id)
	}
	return entry, nil
}

// Categories returns the catalogue categories in display order
func (e *Engine) Categories() []domain.CategoryDefinition {
	return e.catalogue.Categories()
}

// ItemsByCategory yields the entries of one category
func (e *Engine) ItemsByCategory(category domain.Category) (iter.Seq[domain.CatalogueEntry], error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	return e.catalogue.ByCategory(category), nil
}

// CraftableItems yields every craftable entry
func (e *Engine) CraftableItems() iter.Seq[domain.CatalogueEntry] {
	return craftable(e.catalogue.ByCategory(domain.CategoryAll))
}

// CraftableItemsByCategory yields the craftable entries of one category
func (e *Engine) CraftableItemsByCategory(category domain.Category) (iter.Seq[domain.CatalogueEntry], error) {
	items, err := e.ItemsByCategory(category)
	if err != nil {
		return nil, err
	}
	return craftable(items), nil
}

func craftable(entries iter.Seq[domain.CatalogueEntry]) iter.Seq[domain.CatalogueEntry] {
	return func(yield func(domain.CatalogueEntry) bool) {
		for entry := range entries {
			if entry.Craftable && !yield(entry) {
				return
			}
		}
	}
}

// PotionEffect returns the effect details for a code such as "minecraft:swiftness"
func (e *Engine) PotionEffect(code string) (domain.PotionEffect, bool) {
	return potion.Lookup(code)
}

// PotionEffects returns the full effect table
func (e *Engine) PotionEffects() []domain.PotionEffect {
	return potion.Effects()
}

// Fallback returns the placeholder color and emoji for id
func (e *Engine) Fallback(id string) fallback.Visual {
	return fallback.For(id)
}

// Version returns the release the engine resolves textures for
func (e *Engine) Version() texture.Version {
	return e.composer.Version()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
