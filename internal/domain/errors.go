package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalogue errors
	ErrMsgItemNotFound         = "item not found"
	ErrMsgInvalidCatalogue     = "invalid catalogue"
	ErrMsgDuplicateIdentifier  = "duplicate identifier"
	ErrMsgUnknownCategory      = "unknown category"
	ErrMsgUnknownVariantSet    = "unknown variant set"
	ErrMsgInvalidLocalization  = "invalid localization table"
	ErrMsgUnknownVersion       = "unknown minecraft version"
	ErrMsgCatalogueUnavailable = "catalogue unavailable"
)

// Common domain errors
// Resolution itself never fails: these are only returned while tables are loaded
// or by the outer layers (HTTP, database) built on top of the engine.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrInvalidCatalogue     = errors.New(ErrMsgInvalidCatalogue)
	ErrDuplicateIdentifier  = errors.New(ErrMsgDuplicateIdentifier)
	ErrUnknownCategory      = errors.New(ErrMsgUnknownCategory)
	ErrUnknownVariantSet    = errors.New(ErrMsgUnknownVariantSet)
	ErrInvalidLocalization  = errors.New(ErrMsgInvalidLocalization)
	ErrUnknownVersion       = errors.New(ErrMsgUnknownVersion)
	ErrCatalogueUnavailable = errors.New(ErrMsgCatalogueUnavailable)
)
