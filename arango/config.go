// Package arango adapts the official ArangoDB Go driver to the record
// layer: it executes compiled queries through driver cursors, provides the
// document operations the record layer needs, and applies declarative
// schemas.
package arango

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/asaidimu/go-arachne/core/schema"
)

const defaultBatchSize = 100

// Config holds the connection settings for one database.
type Config struct {
	// Host is the server base URL, e.g. http://localhost:8529.
	Host     string
	Database string
	Username string
	Password string

	// SchemaPath locates the YAML schema file, schema.DefaultPath when empty.
	SchemaPath string
	// BatchSize is the cursor batch size for queries, 100 when zero.
	BatchSize uint
	// GenerateKeys makes the client assign UUID document keys instead of
	// leaving key generation to the server.
	GenerateKeys bool
}

// ConfigFromEnv builds a Config from the DB_HOST, DB_NAME, DB_USER and
// DB_PASSWORD environment variables, loading a .env file first when one
// exists. SCHEMA_PATH overrides the default schema file location.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Host:       os.Getenv("DB_HOST"),
		Database:   os.Getenv("DB_NAME"),
		Username:   os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		SchemaPath: os.Getenv("SCHEMA_PATH"),
	}

	var missing []string
	if cfg.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.Database == "" {
		missing = append(missing, "DB_NAME")
	}
	if cfg.Username == "" {
		missing = append(missing, "DB_USER")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: missing env vars: %s", ErrConfig, strings.Join(missing, ", "))
	}
	return cfg, nil
}

func (c Config) schemaPath() string {
	if c.SchemaPath != "" {
		return c.SchemaPath
	}
	return schema.DefaultPath
}

func (c Config) batchSize() uint {
	if c.BatchSize == 0 {
		return defaultBatchSize
	}
	return c.BatchSize
}
