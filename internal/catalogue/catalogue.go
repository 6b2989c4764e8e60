package catalogue

import (
	"fmt"
	"iter"
	"slices"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// Provider is the read-only view of the item catalogue used by the engine
type Provider interface {
	AllIdentifiers() iter.Seq[string]
	Entry(id string) (domain.CatalogueEntry, bool)
	Categories() []domain.CategoryDefinition
	ByCategory(category domain.Category) iter.Seq[domain.CatalogueEntry]
}

// Catalogue is an immutable, ordered set of entries. It is built once and
// shared between goroutines without locking.
type Catalogue struct {
	entries    []domain.CatalogueEntry
	index      map[string]int
	categories []domain.CategoryDefinition
}

// New validates entries and categories and builds a catalogue.
// Entry order is preserved. A zero StackSize becomes domain.DefaultStackSize.
func New(entries []domain.CatalogueEntry, categories []domain.CategoryDefinition) (*Catalogue, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalogue, ErrMsgNoItemsDefined)
	}

	declared := make(map[domain.Category]bool, len(categories))
	for _, def := range categories {
		if !def.ID.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, def.ID)
		}
		declared[def.ID] = true
	}

	c := &Catalogue{
		entries:    make([]domain.CatalogueEntry, 0, len(entries)),
		index:      make(map[string]int, len(entries)),
		categories: slices.Clone(categories),
	}

	for i, entry := range entries {
		if entry.ID == "" {
			return nil, fmt.Errorf(ErrFmtEntryEmptyID, domain.ErrInvalidCatalogue, i)
		}
		if _, dup := c.index[entry.ID]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateIdentifier, entry.ID)
		}
		if entry.Category == domain.CategoryAll || !entry.Category.IsValid() {
			return nil, fmt.Errorf(ErrFmtEntryBadCategory, domain.ErrUnknownCategory, entry.ID, entry.Category)
		}
		if len(declared) > 0 && !declared[entry.Category] {
			return nil, fmt.Errorf(ErrFmtEntryUndeclaredCategory, domain.ErrUnknownCategory, entry.ID, entry.Category)
		}
		if entry.StackSize < 0 {
			return nil, fmt.Errorf(ErrFmtEntryNegativeStack, domain.ErrInvalidCatalogue, entry.ID)
		}
		if entry.StackSize == 0 {
			entry.StackSize = domain.DefaultStackSize
		}

		c.index[entry.ID] = len(c.entries)
		c.entries = append(c.entries, entry)
	}

	return c, nil
}

// AllIdentifiers yields every id in catalogue order
func (c *Catalogue) AllIdentifiers() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range c.entries {
			if !yield(e.ID) {
				return
			}
		}
	}
}

// Entry looks up a single entry by id
func (c *Catalogue) Entry(id string) (domain.CatalogueEntry, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.CatalogueEntry{}, false
	}
	return c.entries[i], true
}

// Categories returns the category definitions in display order
func (c *Catalogue) Categories() []domain.CategoryDefinition {
	return slices.Clone(c.categories)
}

// ByCategory yields the entries of one category. CategoryAll yields everything.
func (c *Catalogue) ByCategory(category domain.Category) iter.Seq[domain.CatalogueEntry] {
	return func(yield func(domain.CatalogueEntry) bool) {
		for _, e := range c.entries {
			if category != domain.CategoryAll && e.Category != category {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns a copy of all entries
func (c *Catalogue) Entries() []domain.CatalogueEntry {
	return slices.Clone(c.entries)
}

// Len returns the number of entries
func (c *Catalogue) Len() int {
	return len(c.entries)
}
