package validation

// Error messages
const (
	ErrMsgParseSchemaFailed = "failed to parse schema JSON: %w"
	ErrMsgParseDataFailed   = "failed to parse JSON data: %w"
	ErrMsgValidationFailed  = "schema validation failed"
)
