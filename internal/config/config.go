// Package config resolves runtime settings. Precedence, highest first:
// explicit overrides (CLI flags), environment, YAML file, defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"myarticles/internal/article"
)

// Environment variables consulted by Load.
const (
	EnvEndpoint = "MYARTICLES_ENDPOINT"
	EnvTimeout  = "MYARTICLES_TIMEOUT"
	EnvConfig   = "MYARTICLES_CONFIG"
)

// DefaultTimeout bounds the article fetch when nothing else is configured.
const DefaultTimeout = 10 * time.Second

// Config holds the resolved settings.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Overrides are values set explicitly on the command line. Nil fields are
// unset.
type Overrides struct {
	ConfigPath *string
	Endpoint   *string
	Timeout    *time.Duration
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint: article.DefaultEndpoint,
		Timeout:  DefaultTimeout,
	}
}

// Load builds a Config from defaults, the YAML file, the environment and
// overrides, in that order. A missing config file is only an error when its
// path was given explicitly.
func Load(o Overrides) (Config, error) {
	cfg := Default()

	path, explicit := os.Getenv(EnvConfig), false
	if path != "" {
		explicit = true
	}
	if o.ConfigPath != nil && *o.ConfigPath != "" {
		path, explicit = *o.ConfigPath, true
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if v := os.Getenv(EnvEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	if o.Endpoint != nil {
		cfg.Endpoint = *o.Endpoint
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fileConfig mirrors Config with a string timeout so YAML can use "5s".
type fileConfig struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	if fc.Endpoint != "" {
		c.Endpoint = fc.Endpoint
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse config %q: timeout: %w", path, err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks that the endpoint is an absolute http(s) URL and the
// timeout is not negative.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q: missing host", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %s: must not be negative", c.Timeout)
	}
	return nil
}
