package localization

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

//go:embed data/ja_jp.yaml
var defaultTableYAML []byte

// Provider looks up localized display strings. Absence is expected and
// reported with ok=false; callers fall back to formatted names.
type Provider interface {
	Localize(id string) (string, bool)
}

// Table is an immutable identifier -> display string mapping
type Table struct {
	locale  string
	entries map[string]string
}

// NewTable copies entries into a new read-only table
func NewTable(locale string, entries map[string]string) *Table {
	copied := make(map[string]string, len(entries))
	for id, name := range entries {
		copied[id] = name
	}
	return &Table{locale: locale, entries: copied}
}

// Empty returns a table without any entries
func Empty() *Table {
	return NewTable("", nil)
}

// Localize returns the localized name for id
func (t *Table) Localize(id string) (string, bool) {
	name, ok := t.entries[id]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Locale returns the locale code of the table ("ja_jp")
func (t *Table) Locale() string {
	return t.locale
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

type tableFile struct {
	Version string            `yaml:"version"`
	Schema  string            `yaml:"schema"`
	Locale  string            `yaml:"locale"`
	Entries map[string]string `yaml:"entries"`
}

// Parse decodes a versioned localization YAML document
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}

	if file.Version == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLocalization, ErrMsgMissingVersion)
	}
	if file.Schema != SchemaLocalization {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidSchema, domain.ErrInvalidLocalization, SchemaLocalization, file.Schema)
	}
	if file.Locale == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLocalization, ErrMsgMissingLocale)
	}

	return NewTable(file.Locale, file.Entries), nil
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(defaultTableYAML)
})

// Default returns the embedded ja_jp table. It is parsed on first use and
// shared afterwards.
func Default() (*Table, error) {
	return loadDefault()
}
