package config

import (
	"github.com/kbukum/fiter/guard"
	"github.com/kbukum/fiter/logger"
	"github.com/kbukum/fiter/observe"
	"github.com/kbukum/fiter/validation"
)

// Config holds the library's ambient settings.
type Config struct {
	Logger  logger.Config  `yaml:"logger" mapstructure:"logger"`
	Guard   guard.Config   `yaml:"guard" mapstructure:"guard"`
	Observe observe.Config `yaml:"observe" mapstructure:"observe"`
}

// Default returns a config with every default applied.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults applies default values to every section.
func (c *Config) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	c.Observe.ApplyDefaults()
}

// Validate checks struct tags first, then each section's own rules.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Observe.Validate()
}

// Load reads, defaults and validates the configuration for name.
func Load(name string, opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(name, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
