package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Errorf("expected default address :8080, got %s", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Environment != "local" {
		t.Errorf("expected local environment, got %s", cfg.Environment)
	}
	if cfg.Dev {
		t.Error("dev mode should be off by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.Site != (SiteConfig{}) {
		t.Errorf("expected empty site overrides, got %+v", cfg.Site)
	}
	if cfg.IsProduction() {
		t.Error("local environment is not production")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()
	env := map[string]string{
		"DOCS_HTTP_ADDR":         "127.0.0.1:9000",
		"DOCS_READ_TIMEOUT":      "5s",
		"DOCS_WRITE_TIMEOUT":     "6s",
		"DOCS_IDLE_TIMEOUT":      "2m",
		"DOCS_SHUTDOWN_TIMEOUT":  "3s",
		"DOCS_BASE_URL":          "https://docs.example.com/",
		"DOCS_SITE_NAME":         "JCC Docs",
		"DOCS_GITHUB_URL":        "https://github.com/example/jcc",
		"DOCS_CONTENT_DIR":       dir,
		"DOCS_DEV":               "true",
		"DOCS_ENV":               "production",
		"DOCS_GA_MEASUREMENT_ID": "G-TEST",
		"LOG_LEVEL":              "DEBUG",
	}

	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != "127.0.0.1:9000" {
		t.Errorf("unexpected address %s", cfg.Server.Address)
	}
	if cfg.Server.ReadTimeout != 5*time.Second || cfg.Server.WriteTimeout != 6*time.Second {
		t.Errorf("unexpected timeouts %+v", cfg.Server)
	}
	if cfg.Server.IdleTimeout != 2*time.Minute || cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("unexpected timeouts %+v", cfg.Server)
	}
	if cfg.Site.BaseURL != "https://docs.example.com" {
		t.Errorf("base url should lose its trailing slash, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.Name != "JCC Docs" || cfg.Site.GitHubURL != "https://github.com/example/jcc" {
		t.Errorf("unexpected site config %+v", cfg.Site)
	}
	if cfg.Content.Dir != dir {
		t.Errorf("unexpected content dir %s", cfg.Content.Dir)
	}
	if !cfg.Dev || !cfg.IsProduction() {
		t.Errorf("expected dev and production flags, got %+v", cfg)
	}
	if cfg.Analytics.GA4MeasurementID != "G-TEST" {
		t.Errorf("unexpected GA id %s", cfg.Analytics.GA4MeasurementID)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected lower-cased log level, got %s", cfg.LogLevel)
	}
}

func TestLoadFallsBackToPort(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{"PORT": "5500"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Address != ":5500" {
		t.Errorf("expected :5500, got %s", cfg.Server.Address)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	env := map[string]string{
		"DOCS_READ_TIMEOUT":  "soon",
		"DOCS_WRITE_TIMEOUT": "-1s",
		"DOCS_DEV":           "maybe",
		"DOCS_BASE_URL":      "docs.example.com",
		"DOCS_CONTENT_DIR":   filepath.Join(t.TempDir(), "missing"),
	}

	_, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	want := []string{"DOCS_DEV", "DOCS_READ_TIMEOUT", "DOCS_WRITE_TIMEOUT", "DOCS_BASE_URL", "DOCS_CONTENT_DIR"}
	if got := vErr.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected fields: got %v want %v", got, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "# comment\nexport DOCS_SITE_NAME=\"From File\"\nDOCS_ENV=staging\nDOCS_GA_MEASUREMENT_ID='G-FILE'\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(context.Background(),
		WithEnvFile(envFile),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"DOCS_ENV": "production"}),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Name != "From File" {
		t.Errorf("expected name from .env, got %q", cfg.Site.Name)
	}
	if cfg.Analytics.GA4MeasurementID != "G-FILE" {
		t.Errorf("expected quotes stripped, got %q", cfg.Analytics.GA4MeasurementID)
	}
	if cfg.Environment != "production" {
		t.Errorf("explicit map should win over .env, got %q", cfg.Environment)
	}
}

func TestLoadSystemEnvBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DOCS_SITE_NAME=file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("DOCS_SITE_NAME", "process")

	cfg, err := Load(context.Background(), WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Name != "process" {
		t.Errorf("process env should beat .env, got %q", cfg.Site.Name)
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, WithoutSystemEnv(), WithEnvFile("")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
