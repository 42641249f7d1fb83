package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Postgres.ConnectAttempts != 5 {
		t.Errorf("expected connect_attempts 5, got %d", cfg.Postgres.ConnectAttempts)
	}
	if cfg.Postgres.ConnectRetryDelay != 5*time.Second {
		t.Errorf("expected connect_retry_delay 5s, got %v", cfg.Postgres.ConnectRetryDelay)
	}
	if cfg.Win.ProjectTitlePrefix != "Project: " {
		t.Errorf("expected default project title prefix, got %q", cfg.Win.ProjectTitlePrefix)
	}
	want := []string{"Kick-off meeting", "Strategy & Design", "Development"}
	if len(cfg.Win.TaskTitles) != len(want) {
		t.Fatalf("expected %d starter tasks, got %d", len(want), len(cfg.Win.TaskTitles))
	}
	for i := range want {
		if cfg.Win.TaskTitles[i] != want[i] {
			t.Errorf("task %d: expected %q, got %q", i, want[i], cfg.Win.TaskTitles[i])
		}
	}
}

func TestLoadYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "test.yaml")

	content := `
server:
  port: "9090"
  cors_origin: "http://example.com"
postgres:
  max_conns: 20
logging:
  level: "debug"
win:
  project_title_prefix: "Engagement: "
  task_titles:
    - "Scope"
    - "Build"
`
	if err := os.WriteFile(yamlPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Defaults()
	if err := loadYAML(&cfg, yamlPath); err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "http://example.com" {
		t.Errorf("expected cors http://example.com, got %s", cfg.Server.CORSOrigin)
	}
	if cfg.Postgres.MaxConns != 20 {
		t.Errorf("expected max_conns 20, got %d", cfg.Postgres.MaxConns)
	}
	if cfg.Win.ProjectTitlePrefix != "Engagement: " {
		t.Errorf("expected overridden prefix, got %q", cfg.Win.ProjectTitlePrefix)
	}
	if len(cfg.Win.TaskTitles) != 2 || cfg.Win.TaskTitles[0] != "Scope" {
		t.Errorf("expected overridden task titles, got %v", cfg.Win.TaskTitles)
	}
	// Unchanged fields keep defaults
	if cfg.Postgres.ConnectAttempts != 5 {
		t.Errorf("expected default connect_attempts, got %d", cfg.Postgres.ConnectAttempts)
	}
}

func TestLoadYAMLMissing(t *testing.T) {
	cfg := Defaults()
	err := loadYAML(&cfg, "/nonexistent/path.yaml")
	if err != nil {
		t.Errorf("missing YAML should not error, got %v", err)
	}
}

func TestEnvOverride(t *testing.T) {
	cfg := Defaults()

	t.Setenv("DEALFLOW_PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://test:test@db:5432/test")
	t.Setenv("DEALFLOW_PG_MAX_CONNS", "25")
	t.Setenv("DEALFLOW_PG_CONNECT_ATTEMPTS", "3")
	t.Setenv("DEALFLOW_PG_CONNECT_RETRY_DELAY", "2s")
	t.Setenv("DEALFLOW_PG_SEED", "true")
	t.Setenv("DEALFLOW_LOG_LEVEL", "warn")
	t.Setenv("DEALFLOW_WIN_TASK_TITLES", "Scope, Build ,Ship")
	t.Setenv("DEALFLOW_DASHBOARD_CACHE_TTL", "10s")

	loadEnv(&cfg)

	if cfg.Server.Port != "7070" {
		t.Errorf("expected port 7070, got %s", cfg.Server.Port)
	}
	if cfg.Postgres.DSN != "postgres://test:test@db:5432/test" {
		t.Errorf("expected test DSN, got %s", cfg.Postgres.DSN)
	}
	if cfg.Postgres.MaxConns != 25 {
		t.Errorf("expected max_conns 25, got %d", cfg.Postgres.MaxConns)
	}
	if cfg.Postgres.ConnectAttempts != 3 {
		t.Errorf("expected connect_attempts 3, got %d", cfg.Postgres.ConnectAttempts)
	}
	if cfg.Postgres.ConnectRetryDelay != 2*time.Second {
		t.Errorf("expected connect_retry_delay 2s, got %v", cfg.Postgres.ConnectRetryDelay)
	}
	if !cfg.Postgres.Seed {
		t.Error("expected seed enabled")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
	want := []string{"Scope", "Build", "Ship"}
	if len(cfg.Win.TaskTitles) != 3 {
		t.Fatalf("expected 3 task titles, got %v", cfg.Win.TaskTitles)
	}
	for i := range want {
		if cfg.Win.TaskTitles[i] != want[i] {
			t.Errorf("task %d: expected %q, got %q", i, want[i], cfg.Win.TaskTitles[i])
		}
	}
	if cfg.Dashboard.CacheTTL != 10*time.Second {
		t.Errorf("expected cache TTL 10s, got %v", cfg.Dashboard.CacheTTL)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "test.yaml")
	content := `
server:
  port: "9090"
`
	if err := os.WriteFile(yamlPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DEALFLOW_PORT", "7070")

	cfg, err := LoadFrom(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("expected env to win over YAML, got %s", cfg.Server.Port)
	}
}

func TestValidateRequired(t *testing.T) {
	cfg := Defaults()
	cfg.Postgres.DSN = ""
	if err := validate(&cfg); err == nil {
		t.Error("expected error for empty DSN")
	}

	cfg = Defaults()
	cfg.Server.Port = ""
	if err := validate(&cfg); err == nil {
		t.Error("expected error for empty port")
	}

	cfg = Defaults()
	cfg.Postgres.MaxConns = 0
	if err := validate(&cfg); err == nil {
		t.Error("expected error for max_conns 0")
	}

	cfg = Defaults()
	cfg.Postgres.ConnectAttempts = 0
	if err := validate(&cfg); err == nil {
		t.Error("expected error for connect_attempts 0")
	}

	cfg = Defaults()
	cfg.Win.TaskTitles = nil
	if err := validate(&cfg); err == nil {
		t.Error("expected error for empty task titles")
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Defaults()
	if err := validate(&cfg); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}
