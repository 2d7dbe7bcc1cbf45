package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// A non-positive versions.max is not an error: the retention policy clamps it.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Storage.Backend == BackendPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the %s backend", BackendPostgres)
	}

	if c.Versions.PruneConcurrency < 1 {
		return fmt.Errorf("versions.prune_concurrency must be >= 1 (got %d)", c.Versions.PruneConcurrency)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))

	switch s.Backend {
	case BackendPostgres:
	case BackendSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the %s backend", BackendSQLite)
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", s.Backend, BackendPostgres, BackendSQLite)
	}

	return nil
}
