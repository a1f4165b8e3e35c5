package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath          = "configs/config.yaml"
	DefaultTimeout       = 10 * time.Second
	DefaultSubjectPrefix = "builder"
	DefaultJournalPrefix = "bids"
)

type Config struct {
	Builder BuilderConfig `yaml:"builder"`
	ChainID string        `yaml:"chain_id"`
	Journal JournalConfig `yaml:"journal"`
	NATS    NATSConfig    `yaml:"nats"`
}

type BuilderConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// JournalConfig locates the local bid journal. An empty Directory disables it.
type JournalConfig struct {
	Directory string `yaml:"directory"`
	Prefix    string `yaml:"prefix"`
}

// NATSConfig enables event publishing when URL is set.
type NATSConfig struct {
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix"`
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Builder.Timeout == 0 {
		c.Builder.Timeout = DefaultTimeout
	}
	if c.Journal.Prefix == "" {
		c.Journal.Prefix = DefaultJournalPrefix
	}
	if c.NATS.SubjectPrefix == "" {
		c.NATS.SubjectPrefix = DefaultSubjectPrefix
	}
}

func (c *Config) Validate() error {
	if c.Builder.BaseURL == "" {
		return errors.New("builder.base_url is required")
	}
	u, err := url.Parse(c.Builder.BaseURL)
	if err != nil {
		return fmt.Errorf("builder.base_url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("builder.base_url %q is not an absolute url", c.Builder.BaseURL)
	}
	if c.Builder.Timeout < 0 {
		return errors.New("builder.timeout must not be negative")
	}
	return nil
}

func (c NATSConfig) Enabled() bool    { return c.URL != "" }
func (c JournalConfig) Enabled() bool { return c.Directory != "" }
