package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables every deployment must set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
}

// RequiredDatabaseEnvVars are additionally required when CATALOGUE_SOURCE=postgres
var RequiredDatabaseEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaVersionMissing, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaVersionMismatch, ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if strings.EqualFold(os.Getenv("CATALOGUE_SOURCE"), CatalogueSourcePostgres) {
		required = append(required[:len(required):len(required)], RequiredDatabaseEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvVars, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, WarnMsgExampleDBPassword)
	}

	switch os.Getenv("API_KEY") {
	case "":
		warnings = append(warnings, WarnMsgNoAPIKey)
	case "generate_with_openssl_rand_hex_32":
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}

	return warnings, nil
}
