package config

// Catalogue sources
const (
	CatalogueSourceEmbedded = "embedded"
	CatalogueSourcePostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultMinecraftVersion  = "1.16"
	DefaultDBMaxConns        = 20
	DefaultSearchLimit       = 50
	DefaultServiceName       = "minecraft-item-icon"
	DefaultEnvironment       = "dev"
	DefaultLogFormat         = "text"
	DefaultDBMaxConnIdleTime = "5m"
	DefaultDBMaxConnLifetime = "30m"
)

// Error messages
const (
	ErrMsgInvalidPort            = "invalid PORT value: %w"
	ErrMsgInvalidCatalogueSource = "invalid CATALOGUE_SOURCE %q: expected %q or %q"
	ErrMsgSchemaVersionMissing   = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaVersionMismatch  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingEnvVars         = "missing required environment variables: %s"
)

// Warnings
const (
	WarnMsgExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgNoAPIKey          = "API_KEY is not set - the item API is served without authentication"
)
