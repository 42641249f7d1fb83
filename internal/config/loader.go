package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "dealflow.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "DEALFLOW_PORT")
	setString(&cfg.Server.CORSOrigin, "DEALFLOW_CORS_ORIGIN")
	setString(&cfg.Postgres.DSN, "DATABASE_URL")
	setInt32(&cfg.Postgres.MaxConns, "DEALFLOW_PG_MAX_CONNS")
	setInt32(&cfg.Postgres.MinConns, "DEALFLOW_PG_MIN_CONNS")
	setDuration(&cfg.Postgres.MaxConnLifetime, "DEALFLOW_PG_MAX_CONN_LIFETIME")
	setDuration(&cfg.Postgres.MaxConnIdleTime, "DEALFLOW_PG_MAX_CONN_IDLE_TIME")
	setDuration(&cfg.Postgres.HealthCheck, "DEALFLOW_PG_HEALTH_CHECK")
	setInt(&cfg.Postgres.ConnectAttempts, "DEALFLOW_PG_CONNECT_ATTEMPTS")
	setDuration(&cfg.Postgres.ConnectRetryDelay, "DEALFLOW_PG_CONNECT_RETRY_DELAY")
	setBool(&cfg.Postgres.Seed, "DEALFLOW_PG_SEED")
	setString(&cfg.Logging.Level, "DEALFLOW_LOG_LEVEL")
	setString(&cfg.Logging.Service, "DEALFLOW_LOG_SERVICE")
	setString(&cfg.Otel.Endpoint, "DEALFLOW_OTEL_ENDPOINT")
	setString(&cfg.Win.ProjectTitlePrefix, "DEALFLOW_WIN_PROJECT_TITLE_PREFIX")
	setStringSlice(&cfg.Win.TaskTitles, "DEALFLOW_WIN_TASK_TITLES")
	setDuration(&cfg.Dashboard.CacheTTL, "DEALFLOW_DASHBOARD_CACHE_TTL")
	setInt64(&cfg.Dashboard.CacheSizeMB, "DEALFLOW_DASHBOARD_CACHE_SIZE_MB")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if cfg.Postgres.MaxConns < 1 {
		return errors.New("postgres.max_conns must be >= 1")
	}
	if cfg.Postgres.ConnectAttempts < 1 {
		return errors.New("postgres.connect_attempts must be >= 1")
	}
	if len(cfg.Win.TaskTitles) == 0 {
		return errors.New("win.task_titles must not be empty")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// setStringSlice splits a comma-separated env value into a slice.
func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		*dst = parts
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt32(dst *int32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(n)
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
