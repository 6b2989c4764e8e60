package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Item resolution
	MinecraftVersion string
	TextureBaseURL   string
	CatalogueSource  string
	CatalogueFile    string // optional items.json replacing the embedded catalogue
	SearchLimit      int

	// Database (only used when CatalogueSource is postgres)
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string   // optional; when set, /api requires X-API-Key
	TrustedProxies []string // proxy IPs whose X-Forwarded-For is honored
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		MinecraftVersion: getEnv("MINECRAFT_VERSION", DefaultMinecraftVersion),
		TextureBaseURL:   strings.TrimSuffix(getEnv("TEXTURE_BASE_URL", ""), "/"),
		CatalogueSource:  strings.ToLower(getEnv("CATALOGUE_SOURCE", CatalogueSourceEmbedded)),
		CatalogueFile:    getEnv("CATALOGUE_FILE", ""),
		SearchLimit:      getEnvAsInt("SEARCH_LIMIT", DefaultSearchLimit),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "itemicon"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", mustDuration(DefaultDBMaxConnIdleTime)),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", mustDuration(DefaultDBMaxConnLifetime)),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.CatalogueSource != CatalogueSourceEmbedded && cfg.CatalogueSource != CatalogueSourcePostgres {
		return nil, fmt.Errorf(ErrMsgInvalidCatalogueSource, cfg.CatalogueSource, CatalogueSourceEmbedded, CatalogueSourcePostgres)
	}

	return cfg, nil
}

// UsesDatabase reports whether the catalogue is read from PostgreSQL
func (c *Config) UsesDatabase() bool {
	return c.CatalogueSource == CatalogueSourcePostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable ("10m"), falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
