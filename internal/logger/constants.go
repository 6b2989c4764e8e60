package logger

// Accepted LOG_LEVEL values; "warning" is an alias of "warn"
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallbacks when the build does not stamp a service name or version
const (
	DefaultServiceName = "minecraft-item-icon"
	DefaultVersion     = "dev"
)

// Environments with dedicated presets
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
