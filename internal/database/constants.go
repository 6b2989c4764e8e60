package database

// DefaultMinConnections is the minimum number of connections to maintain in the pool
const DefaultMinConnections = 2

// MigrationsDir is the directory of the embedded goose migrations
const MigrationsDir = "migrations"

// Dialect is the goose dialect of the embedded migrations
const Dialect = "postgres"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadVersion     = "failed to read schema version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
