package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/menu"
)

// Config represents the application configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Index   IndexConfig   `yaml:"index"`
	Server  ServerConfig  `yaml:"server"`
	Events  EventsConfig  `yaml:"events"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SiteConfig holds site-level metadata consumed by the navigation core.
type SiteConfig struct {
	Title string `yaml:"title"`
	// RepositoryURL is the repository (or tree view) used for edit links. When
	// empty it is detected from the git remote of the content directory.
	RepositoryURL   string                     `yaml:"repository_url,omitempty"`
	EditBranch      string                     `yaml:"edit_branch,omitempty"`
	PathPrefix      string                     `yaml:"path_prefix,omitempty"`
	DefaultLanguage string                     `yaml:"default_language"`
	Languages       []string                   `yaml:"languages"`
	Anchor          string                     `yaml:"anchor"`
	Categories      []menu.CategoryDeclaration `yaml:"categories,omitempty"`
}

// ContentConfig describes where pages live and how outlines are generated.
type ContentConfig struct {
	Dir         string `yaml:"dir"`
	TOCMinLevel int    `yaml:"toc_min_level"`
	TOCMaxLevel int    `yaml:"toc_max_level"`
}

// IndexConfig configures the persistent page index. An empty path keeps the
// index in memory.
type IndexConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	SessionTTL      time.Duration `yaml:"session_ttl"`
	Watch           bool          `yaml:"watch"`
	ReindexInterval time.Duration `yaml:"reindex_interval,omitempty"`
}

// EventsConfig configures index-change notifications. Publishing is disabled
// when NATSURL is empty.
type EventsConfig struct {
	NATSURL string      `yaml:"nats_url,omitempty"`
	Subject string      `yaml:"subject"`
	Retry   RetryConfig `yaml:"retry"`
}

// RetryConfig controls republishing after transient failures. Zero values
// select the defaults of the retry package.
type RetryConfig struct {
	Backoff    string        `yaml:"backoff,omitempty"` // fixed|linear|exponential
	Initial    time.Duration `yaml:"initial,omitempty"`
	Max        time.Duration `yaml:"max,omitempty"`
	MaxRetries int           `yaml:"max_retries,omitempty"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads, expands, defaults and validates the configuration at configPath.
// Variables from .env and .env.local are loaded first without overriding the
// process environment.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFiles loads the first readable of .env and .env.local.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Note: %s could not be loaded: %v\n", envPath, err)
			continue
		}
		return
	}
}

// Init writes an example configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.New(derrors.CategoryConfig, derrors.SeverityFatal, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath)
	}

	example := Example()
	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityFatal, "failed to write config file").
			WithContext("path", configPath)
	}
	return nil
}

// Example returns the configuration written by Init.
func Example() Config {
	cfg := Config{
		Site: SiteConfig{
			Title:           "Documentation",
			RepositoryURL:   "https://github.com/example/project/tree/master/site",
			DefaultLanguage: "en",
			Languages:       []string{"en", "zh"},
			Anchor:          "docs",
			Categories: []menu.CategoryDeclaration{
				{Slug: "api/general", Title: map[string]string{"en": "General", "zh": "通用"}, Order: 1},
				{Slug: "manual/tutorial", Title: map[string]string{"en": "Tutorial", "zh": "教程"}, Order: 2},
			},
		},
		Content: ContentConfig{Dir: "./site"},
		Index:   IndexConfig{Path: "./docnav.db"},
		Metrics: MetricsConfig{Enabled: true},
	}
	_ = ApplyDefaults(&cfg)
	return cfg
}
