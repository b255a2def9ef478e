package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries the environment settings the server needs at startup.
type Config struct {
	SecretKey      string
	Debug          bool
	AllowedOrigins string
	Port           string

	// ManageReservedRoles opts this deployment into seeding the reserved
	// roles after migration.
	ManageReservedRoles bool
}

// Load reads the configuration from the environment. Required variables
// missing means startup fails fast.
func Load() (*Config, error) {
	secret, err := MustGet("SECRET_KEY")
	if err != nil {
		return nil, err
	}

	return &Config{
		SecretKey:           secret,
		Debug:               GetBool("DEBUG", false),
		AllowedOrigins:      Get("ALLOWED_ORIGINS", "*"),
		Port:                Get("PORT", "3000"),
		ManageReservedRoles: GetBool("MANAGE_RESERVED_ROLES", true),
	}, nil
}

// MustGet returns the environment variable or an error when it is unset.
func MustGet(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("set the %s environment variable", name)
	}
	return value, nil
}

// Get returns the environment variable or the fallback when it is unset.
func Get(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// GetBool parses the environment variable as a boolean, falling back when
// unset or unparseable.
func GetBool(name string, fallback bool) bool {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
