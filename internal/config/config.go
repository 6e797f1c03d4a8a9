// Package config loads the settings of the ae7q command.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig    = "AE7Q_CONFIG"
	EnvBaseURL   = "AE7Q_BASE_URL"
	EnvUserAgent = "AE7Q_USER_AGENT"
	EnvTimeout   = "AE7Q_TIMEOUT"
)

// Defaults
const (
	DefaultBaseURL    = "http://ae7q.com/query/"
	DefaultUserAgent  = "ae7q-go/1.0"
	DefaultTimeout    = 30 * time.Second
	DefaultTableClass = "Database"
)

// Config holds the settings of the ae7q command. Durations are written
// as Go duration strings ("30s").
type Config struct {
	BaseURL          string        `yaml:"baseURL"`
	UserAgent        string        `yaml:"userAgent"`
	Timeout          time.Duration `yaml:"timeout"`
	TableClass       string        `yaml:"tableClass"`
	CanadianPrefixes []string      `yaml:"canadianPrefixes"`
}

// Default returns the built-in configuration. A nil CanadianPrefixes means
// the library's own list is used.
func Default() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		UserAgent:  DefaultUserAgent,
		Timeout:    DefaultTimeout,
		TableClass: DefaultTableClass,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment and validates the result.
func (c *Config) ApplyEnv() error {
	c.BaseURL = getEnvOrDefault(EnvBaseURL, c.BaseURL)
	c.UserAgent = getEnvOrDefault(EnvUserAgent, c.UserAgent)

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}

	return c.validate()
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return errors.New("baseURL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("baseURL %q is not an absolute URL", c.BaseURL)
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	for _, p := range c.CanadianPrefixes {
		if len(p) != 2 {
			return fmt.Errorf("canadian prefix %q must be two letters", p)
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
