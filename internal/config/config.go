package config

import "time"

// Backend names accepted by StorageConfig.Backend.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Versions VersionsConfig `yaml:"versions"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StorageConfig selects where version records live.
type StorageConfig struct {
	Backend    string `yaml:"backend"     env:"STORAGE_BACKEND"     env-default:"postgres"`
	SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"./moduleversion.db"`
}

// VersionsConfig holds the retention settings.
type VersionsConfig struct {
	// Max is the number of versions kept per module. Values below 1 are
	// treated as 1 by the retention policy.
	Max              int `yaml:"max"               env:"VERSIONS_MAX"               env-default:"10"`
	PruneConcurrency int `yaml:"prune_concurrency" env:"VERSIONS_PRUNE_CONCURRENCY" env-default:"4"`
}

// MetricsConfig controls Prometheus metric export for batch commands.
type MetricsConfig struct {
	// TextfilePath, when set, is where commands write their metrics in the
	// node_exporter textfile format.
	TextfilePath string `yaml:"textfile_path" env:"METRICS_TEXTFILE_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
