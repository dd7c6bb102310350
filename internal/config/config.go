package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultEnvironment     = "local"
	defaultLogLevel        = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Environment string
	Dev         bool
	LogLevel    string

	Server    ServerConfig
	Site      SiteConfig
	Content   ContentConfig
	Analytics AnalyticsConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// SiteConfig overrides the identity of the documentation site. Empty values keep the
// built-in defaults.
type SiteConfig struct {
	Name      string
	BaseURL   string
	GitHubURL string
}

// ContentConfig points the server at on-disk pages and templates instead of the embedded ones.
type ContentConfig struct {
	Dir          string
	TemplatesDir string
}

// AnalyticsConfig holds client instrumentation surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string
}

// ValidationError is returned when configuration fields are invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, the process environment and
// explicit overrides, in increasing order of precedence.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	p := parser{lookup: lookup}
	cfg := Config{
		Environment: p.string("DOCS_ENV", defaultEnvironment),
		Dev:         p.bool("DOCS_DEV", false),
		LogLevel:    strings.ToLower(p.string("LOG_LEVEL", defaultLogLevel)),
		Server: ServerConfig{
			Address:         resolveAddress(lookup),
			ReadTimeout:     p.duration("DOCS_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    p.duration("DOCS_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     p.duration("DOCS_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: p.duration("DOCS_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Site: SiteConfig{
			Name:      p.string("DOCS_SITE_NAME", ""),
			BaseURL:   strings.TrimRight(p.string("DOCS_BASE_URL", ""), "/"),
			GitHubURL: p.string("DOCS_GITHUB_URL", ""),
		},
		Content: ContentConfig{
			Dir:          p.string("DOCS_CONTENT_DIR", ""),
			TemplatesDir: p.string("DOCS_TEMPLATES_DIR", ""),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: p.string("DOCS_GA_MEASUREMENT_ID", ""),
		},
	}

	if err := validateConfig(cfg, p.invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction reports whether the configured environment is production.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

func resolveAddress(lookup func(string) (string, bool)) string {
	if addr, ok := lookup("DOCS_HTTP_ADDR"); ok && strings.TrimSpace(addr) != "" {
		return strings.TrimSpace(addr)
	}
	// Cloud Run style PORT as a fallback.
	if port, ok := lookup("PORT"); ok && strings.TrimSpace(port) != "" {
		return ":" + strings.TrimSpace(port)
	}
	return ":" + defaultPort
}

func validateConfig(cfg Config, invalid []string) error {
	fields := append([]string(nil), invalid...)

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"DOCS_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"DOCS_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"DOCS_IDLE_TIMEOUT", cfg.Server.IdleTimeout},
		{"DOCS_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
	}
	for _, tm := range timeouts {
		if tm.value <= 0 && !contains(fields, tm.name) {
			fields = append(fields, tm.name)
		}
	}
	if cfg.Site.BaseURL != "" && !isAbsoluteHTTPURL(cfg.Site.BaseURL) {
		fields = append(fields, "DOCS_BASE_URL")
	}
	if cfg.Site.GitHubURL != "" && !isAbsoluteHTTPURL(cfg.Site.GitHubURL) {
		fields = append(fields, "DOCS_GITHUB_URL")
	}
	if cfg.Content.Dir != "" && !isDir(cfg.Content.Dir) {
		fields = append(fields, "DOCS_CONTENT_DIR")
	}
	if cfg.Content.TemplatesDir != "" && !isDir(cfg.Content.TemplatesDir) {
		fields = append(fields, "DOCS_TEMPLATES_DIR")
	}

	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

type parser struct {
	lookup  func(string) (string, bool)
	invalid []string
}

func (p *parser) string(key, fallback string) string {
	if value, ok := p.lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return d
}

func (p *parser) bool(key string, fallback bool) bool {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return b
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}
