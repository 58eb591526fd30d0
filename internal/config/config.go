// Package config loads and validates scraper configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matforge/materialdb/internal/scrape"
)

// Config captures all runtime knobs loaded via Viper. Environment variables
// with the CATALOG_ prefix override file values, e.g. CATALOG_OUTPUT_DIR.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	JS      JSConfig      `mapstructure:"js"`
	Images  ImagesConfig  `mapstructure:"images"`
	Logging LoggingConfig `mapstructure:"logging"`
	Sources SourcesConfig `mapstructure:"sources"`
}

// OutputConfig sets where catalog files and images land.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// HTTPConfig governs the page fetcher.
type HTTPConfig struct {
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	DelayMs        int    `mapstructure:"delay_ms"`
}

// JSConfig governs the headless browser strategy.
type JSConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// ImagesConfig toggles image localization.
type ImagesConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// SourcesConfig lets a config file replace the built-in source lists. An
// empty list means use the built-ins.
type SourcesConfig struct {
	Resins    []scrape.SourceConfig `mapstructure:"resins"`
	Filaments []scrape.SourceConfig `mapstructure:"filaments"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "data")
	v.SetDefault("http.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.delay_ms", 500)
	v.SetDefault("js.timeout_seconds", 60)
	v.SetDefault("images.enabled", true)
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.level", "info")
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must be set")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.HTTP.DelayMs < 0 {
		return fmt.Errorf("http.delay_ms must be >= 0")
	}
	if c.JS.TimeoutSeconds <= 0 {
		return fmt.Errorf("js.timeout_seconds must be > 0")
	}
	for _, src := range append(append([]scrape.SourceConfig{}, c.Sources.Resins...), c.Sources.Filaments...) {
		if err := src.Validate(); err != nil {
			return fmt.Errorf("sources: %w", err)
		}
	}
	return nil
}

// ScrapeOptions converts the HTTP and JS sections into strategy options.
func (c Config) ScrapeOptions() scrape.Options {
	return scrape.Options{
		UserAgent:      c.HTTP.UserAgent,
		RequestTimeout: time.Duration(c.HTTP.TimeoutSeconds) * time.Second,
		RequestDelay:   time.Duration(c.HTTP.DelayMs) * time.Millisecond,
		JSTimeout:      time.Duration(c.JS.TimeoutSeconds) * time.Second,
	}
}

// ResinSources returns the configured resin sources, or the built-ins.
func (c Config) ResinSources() []scrape.SourceConfig {
	if len(c.Sources.Resins) > 0 {
		return c.Sources.Resins
	}
	return scrape.DefaultResinSources
}

// FilamentSources returns the configured filament sources, or the built-ins.
func (c Config) FilamentSources() []scrape.SourceConfig {
	if len(c.Sources.Filaments) > 0 {
		return c.Sources.Filaments
	}
	return scrape.DefaultFilamentSources
}
