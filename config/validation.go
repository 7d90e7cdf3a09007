package config

import (
	"fmt"
	"strconv"
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

// Validate checks that the configuration is complete and well-formed
func Validate(cfg *Config) error {
	var errors []string

	if cfg.DatabaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "DATABASE_URL",
			Message: "required environment variable is not set",
		}.Error())
	}

	switch cfg.DatabaseClient {
	case ClientPostgres, ClientSQLite:
	default:
		errors = append(errors, ValidationError{
			Field:   "DATABASE_CLIENT",
			Message: fmt.Sprintf("must be %q or %q, got %q", ClientPostgres, ClientSQLite, cfg.DatabaseClient),
		}.Error())
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, ValidationError{
			Field:   "PORT",
			Message: fmt.Sprintf("must be numeric, got %q", cfg.ServerPort),
		}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
