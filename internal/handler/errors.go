package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Item error messages
	ErrMsgEntryLookupFailed    = "Failed to look up item"
	ErrMsgCategoryLookupFailed = "Failed to list category items"
	ErrMsgPotionNotFound       = "Potion effect not found"

	// Readiness messages
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// User-facing messages for domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgUnknownCategoryErr  = "Unknown category"
	ErrMsgCatalogueUnavailErr = "Item catalogue is unavailable"
)

// Validation messages returned in the field map of a 400 response
const (
	ValidationMsgRequired  = "This field is required"
	ValidationMsgNoControl = "Contains invalid characters"
	ValidationMsgCategory  = "Unknown category"
	ValidationMsgMaxFmt    = "Must be at most %s characters"
	ValidationMsgMinFmt    = "Must be at least %s"
	ValidationMsgLimitFmt  = "Must be between 1 and %s"
	ValidationMsgInvalid   = "Invalid value"
	ValidationMsgFormat    = "Invalid request format"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgValidationFailed    = "Request validation failed"
	LogMsgServiceError        = "Request failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteBufferFailed   = "Failed to write response buffer"
	LogMsgTextureResolved     = "Texture path resolved"
	LogMsgSearchCompleted     = "Catalogue search completed"
	LogMsgEntryLookupFailed   = "Catalogue entry lookup failed"
	LogMsgCategoryListFailed  = "Category listing failed"
	LogMsgInvalidQueryParam   = "Invalid query parameter"
	LogMsgMissingQueryParam   = "Missing query parameter"
)
