package localization

// SchemaLocalization is the schema identifier every localization file must declare
const SchemaLocalization = "item-localization"

// DefaultLocale is the single fallback locale shipped with the service
const DefaultLocale = "ja_jp"

// Error messages
const (
	ErrMsgParseFailed    = "failed to parse localization table: %w"
	ErrMsgMissingVersion = "missing version field"
	ErrMsgMissingLocale  = "missing locale field"
	ErrMsgInvalidSchema  = "expected schema '%s', got '%s'"
)
