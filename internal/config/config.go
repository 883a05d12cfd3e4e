package config

import "github.com/kelseyhightower/envconfig"

// Config is sourced from environment variables (a .env file is loaded in
// main for local runs).
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	SnapshotDSN string `envconfig:"SNAPSHOT_DSN" default:"dairydelight.db"`
	RedisURL    string `envconfig:"REDIS_URL"` // when set, snapshots go to Redis instead of SQLite
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	TemplateDir string `envconfig:"TEMPLATE_DIR" default:"./web/templates"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
