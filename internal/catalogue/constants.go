package catalogue

// SchemaCatalogue is the schema identifier every catalogue file must declare
const SchemaCatalogue = "item-catalogue"

// ItemsSchemaName is the name the embedded JSON schema is registered under
const ItemsSchemaName = "items.schema.json"

// ==================== Error Messages ====================

const (
	ErrMsgReadFileFailed   = "failed to read catalogue file: %w"
	ErrMsgParseFailed      = "failed to parse catalogue: %w"
	ErrMsgRegisterSchema   = "failed to register catalogue schema: %w"
	ErrMsgSchemaValidation = "catalogue schema validation failed: %w"
	ErrMsgNoItemsDefined   = "no items defined"
	ErrMsgFileNil          = "catalogue file is nil"
)

// Format strings used with fmt.Errorf
const (
	ErrFmtEntryEmptyID            = "%w: entry at index %d has empty id"
	ErrFmtEntryBadCategory        = "%w: entry %q has category %q"
	ErrFmtEntryUndeclaredCategory = "%w: entry %q uses undeclared category %q"
	ErrFmtEntryNegativeStack      = "%w: entry %q has negative stack_size"
	ErrFmtUnknownVariantSet       = "%w: entry %q references %q"
	ErrFmtSchemaMismatch          = "%w: expected schema '%s', got '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogueLoaded = "Item catalogue loaded"
)
