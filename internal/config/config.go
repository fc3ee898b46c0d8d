package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// schemaPattern is the only shape of schema name accepted from the
// environment. The name is interpolated into DDL and table names exactly
// once, at startup, so a malformed value must never get past here.
var schemaPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DBConfig holds database connection parameters
type DBConfig struct {
	URL    string
	Schema string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment")
	}

	schema := os.Getenv("MAIN_DB_SCHEMA")
	if schema == "" {
		schema = "public"
	}
	if !schemaPattern.MatchString(schema) {
		return nil, fmt.Errorf("MAIN_DB_SCHEMA %q is not a valid identifier", schema)
	}

	return &DBConfig{URL: url, Schema: schema}, nil
}

// SMTPConfig holds the relay settings for admin notifications
type SMTPConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	AdminEmail string
}

// LoadSMTPConfig loads SMTP settings from environment variables. Notification
// is optional: a nil config (with nil error) means email is disabled.
func LoadSMTPConfig() (*SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")
	adminEmail := os.Getenv("ADMIN_EMAIL")

	if host == "" || user == "" || password == "" || adminEmail == "" {
		return nil, nil
	}

	port := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
		}
		port = p
	}

	return &SMTPConfig{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		AdminEmail: adminEmail,
	}, nil
}

// DebugErrors reports whether 500 responses should echo the underlying error
// message instead of an opaque identifier.
func DebugErrors() bool {
	v, _ := strconv.ParseBool(os.Getenv("DEBUG_ERRORS"))
	return v
}
