package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration for the current environment. The
// sqlite driver needs no credentials, which keeps local single-user setups
// config-free; postgres deployments must be fully specified.
func ValidateConfig(cfg *Config) error {
	var errors []string

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			errors = append(errors, "SQLITE_PATH is required with the sqlite driver")
		}
	case "postgres":
		for field, value := range map[string]string{
			"DB_HOST":     cfg.DBHost,
			"DB_PORT":     cfg.DBPort,
			"DB_USER":     cfg.DBUser,
			"DB_PASSWORD": cfg.DBPassword,
			"DB_NAME":     cfg.DBName,
		} {
			if value == "" {
				errors = append(errors, fmt.Sprintf("%s is required with the postgres driver", field))
			}
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown DB_DRIVER %q", cfg.DBDriver))
	}

	if GetEnvironment() == Production && cfg.GeminiAPIKey == "" {
		errors = append(errors, "GEMINI_API_KEY or GEMINI_API_KEY_FILE is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
