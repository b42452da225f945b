package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the file.
const (
	EnvAPIKey = "GEMINI_API_KEY"
	EnvURL    = "GEMINI_URL"
)

// Config represents the structure of the configuration file.
type Config struct {
	Server   Server   `yaml:"server"`
	Gemini   Gemini   `yaml:"gemini"`
	Messages Messages `yaml:"messages"`
	Store    Store    `yaml:"store"`
	Log      Log      `yaml:"log"`
}

type Server struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type Gemini struct {
	APIKey       string        `yaml:"api_key"`
	APIKeys      []string      `yaml:"api_keys"`
	URL          string        `yaml:"url"`
	Timeout      time.Duration `yaml:"timeout"`
	PingInterval time.Duration `yaml:"ping_interval"`
}

// Messages selects the fallback catalog and optionally overrides single entries.
type Messages struct {
	Locale       string `yaml:"locale"`
	RateLimited  string `yaml:"rate_limited"`
	Unauthorized string `yaml:"unauthorized"`
	BadRequest   string `yaml:"bad_request"`
	Generic      string `yaml:"generic"`
}

// Store configures the exchange log. An empty path disables it.
type Store struct {
	Path      string        `yaml:"path"`
	Retention time.Duration `yaml:"retention"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Keys returns every configured API key, the single api_key first.
func (g Gemini) Keys() []string {
	keys := make([]string, 0, len(g.APIKeys)+1)
	if g.APIKey != "" {
		keys = append(keys, g.APIKey)
	}
	return append(keys, g.APIKeys...)
}

// Default returns a Config with every optional field populated.
func Default() *Config {
	return &Config{
		Server: Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Messages: Messages{Locale: "ko"},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file from the given path, applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(EnvURL); v != "" {
		c.Gemini.URL = v
	}
}

// Validate reports missing or out-of-range settings.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Gemini.Keys()) == 0 {
		errs = append(errs, fmt.Errorf("gemini.api_key is required (or set %s)", EnvAPIKey))
	}
	if c.Gemini.URL == "" {
		errs = append(errs, fmt.Errorf("gemini.url is required (or set %s)", EnvURL))
	}
	if c.Gemini.Timeout < 0 || c.Gemini.PingInterval < 0 || c.Store.Retention < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
