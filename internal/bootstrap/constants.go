package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	LogFileNamePattern = "session_%s.log"
	LogFileExtension   = ".log"

	// LogFileRetentionCount is the number of old log files kept next to the new one
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Minecraft item icon service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Catalogue Loading
// =============================================================================

// EmbeddedSourceName identifies the built-in items.json in sync metadata
const EmbeddedSourceName = "embedded-items"

const (
	LogMsgLoadingCatalogue     = "Loading item catalogue"
	LogMsgSyncingCatalogue     = "Syncing item catalogue to database..."
	LogMsgCatalogueSynced      = "Item catalogue synced successfully"
	LogMsgCatalogueUnchanged   = "Item catalogue unchanged, sync skipped"
	LogMsgMigrationsApplied    = "Database migrations applied"
	LogMsgEngineReady          = "Item engine ready"
	ErrMsgFailedLoadCatalogue  = "failed to load item catalogue"
	ErrMsgFailedBuildCatalogue = "failed to build item catalogue"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to apply database migrations"
	ErrMsgFailedSyncCatalogue  = "failed to sync item catalogue to database"
	ErrMsgFailedReadCatalogue  = "failed to read item catalogue from database"
	ErrMsgFailedLoadLocale     = "failed to load localization table"
	ErrMsgFailedCreateEngine   = "failed to create item engine"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
