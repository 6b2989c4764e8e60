package catalogue

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
	"github.com/osse101/MinecraftItemIcon_Go/internal/potion"
	"github.com/osse101/MinecraftItemIcon_Go/internal/validation"
)

//go:embed data/items.json
var defaultItemsJSON []byte

//go:embed data/items.schema.json
var itemsSchemaJSON []byte

// File is the on-disk catalogue document
type File struct {
	Version     string                      `json:"version"`
	Schema      string                      `json:"schema"`
	Description string                      `json:"description"`
	Categories  []domain.CategoryDefinition `json:"categories"`
	Items       []ItemDef                   `json:"items"`
}

// ItemDef is a single item as written in the catalogue file.
// Variants names a variant set; every member becomes its own entry
// ("minecraft:potion.swiftness") placed right after the base item.
type ItemDef struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  domain.Category `json:"category"`
	StackSize int             `json:"stack_size,omitempty"`
	Craftable bool            `json:"craftable,omitempty"`
	Variants  string          `json:"variants,omitempty"`
}

// variantSets maps the names usable in ItemDef.Variants to their members
var variantSets = map[string]func() []domain.PotionEffect{
	"potion": potion.Effects,
}

// Loader reads, validates and builds catalogues
type Loader interface {
	Load(path string) (*File, error)
	Parse(data []byte) (*File, error)
	Build(file *File) (*Catalogue, error)
}

type catalogueLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader with the embedded item schema registered
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(ItemsSchemaName, itemsSchemaJSON); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchema, err)
	}
	return &catalogueLoader{schemaValidator: v}, nil
}

// Load reads and parses a catalogue file from disk
func (l *catalogueLoader) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, err)
	}
	return l.Parse(data)
}

// Parse validates data against the item schema and decodes it
func (l *catalogueLoader) Parse(data []byte) (*File, error) {
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaValidation, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}
	if file.Schema != SchemaCatalogue {
		return nil, fmt.Errorf(ErrFmtSchemaMismatch, domain.ErrInvalidCatalogue, SchemaCatalogue, file.Schema)
	}

	return &file, nil
}

// Build expands variant sets and builds the immutable catalogue
func (l *catalogueLoader) Build(file *File) (*Catalogue, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalogue, ErrMsgFileNil)
	}

	entries, err := Expand(file.Items)
	if err != nil {
		return nil, err
	}
	return New(entries, file.Categories)
}

// Expand converts item definitions to entries, inserting variant entries
// after their base item in variant set order
func Expand(items []ItemDef) ([]domain.CatalogueEntry, error) {
	entries := make([]domain.CatalogueEntry, 0, len(items))
	for _, def := range items {
		base := domain.CatalogueEntry{
			ID:        def.ID,
			Name:      def.Name,
			Category:  def.Category,
			StackSize: def.StackSize,
			Craftable: def.Craftable,
		}
		entries = append(entries, base)

		if def.Variants == "" {
			continue
		}
		members, ok := variantSets[def.Variants]
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownVariantSet, domain.ErrUnknownVariantSet, def.ID, def.Variants)
		}

		namespace, _, _ := domain.SplitIdentifier(def.ID)
		for _, effect := range members() {
			path := domain.StripNamespace(effect.ID)
			entries = append(entries, domain.CatalogueEntry{
				ID:        def.ID + domain.VariantSeparator + path,
				Name:      def.Name + ": " + potion.DisplayName(effect),
				Category:  def.Category,
				StackSize: def.StackSize,
				// the uncraftable potion has no texture of its own
				Craftable: def.Craftable && effect.Texture != "",
				Variant:   domain.JoinIdentifier(namespace, path),
			})
		}
	}
	return entries, nil
}

var loadDefault = sync.OnceValues(func() (*Catalogue, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	file, err := l.Parse(defaultItemsJSON)
	if err != nil {
		return nil, err
	}
	return l.Build(file)
})

// Default returns the catalogue built from the embedded items.json
func Default() (*Catalogue, error) {
	return loadDefault()
}

// DefaultData returns the raw embedded catalogue document
func DefaultData() []byte {
	return defaultItemsJSON
}

// ContentHash fingerprints a catalogue document so stores can skip
// re-importing unchanged data
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
