package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is raised when an item references a missing category
	PgErrorCodeForeignKeyViolation = "23503"
)

// Table names
const (
	TableCategories   = "item_categories"
	TableItems        = "catalogue_items"
	TableSyncMetadata = "catalogue_sync_metadata"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToRollback          = "Failed to rollback transaction"
)

// Error Messages - Catalogue Operations
const (
	ErrMsgFailedToReadSyncMetadata  = "failed to read catalogue sync metadata"
	ErrMsgFailedToWriteSyncMetadata = "failed to write catalogue sync metadata"
	ErrMsgFailedToUpsertCategories  = "failed to upsert item categories"
	ErrMsgFailedToPruneCategories   = "failed to prune item categories"
	ErrMsgFailedToClearItems        = "failed to clear catalogue items"
	ErrMsgFailedToCopyItems         = "failed to copy catalogue items"
	ErrMsgFailedToLoadCategories    = "failed to load item categories"
	ErrMsgFailedToLoadItems         = "failed to load catalogue items"
	ErrMsgEmptyCatalogue            = "no catalogue items stored"
	ErrMsgConstraintViolation       = "catalogue violates a database constraint"
)

// Log messages
const (
	LogMsgCatalogueSynced    = "Catalogue synced to database"
	LogMsgCatalogueUnchanged = "Catalogue unchanged, sync skipped"
	LogMsgCatalogueLoaded    = "Catalogue loaded from database"
)
