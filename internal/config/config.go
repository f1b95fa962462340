// Package config loads tool configuration from an optional YAML file,
// environment variables (EVOS_ prefix) and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full tool configuration.
type Config struct {
	General `mapstructure:"general"`
	Display `mapstructure:"display"`
	Log     `mapstructure:"log"`
}

type General struct {
	Language string `mapstructure:"language"` // en, zh
}

type Display struct {
	ByteUnit string `mapstructure:"byte_unit"` // auto, kb, mb, gb
}

type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // optional extra sink
}

// Load reads configuration. An explicit path must exist; without one the
// file is searched in the working directory and ~/.evos, and defaults
// apply when nothing is found.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("general.language", "en")
	v.SetDefault("display.byte_unit", "auto")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("evos")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.evos")
	}

	v.SetEnvPrefix("EVOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.General.Language) {
	case "en", "zh":
	default:
		return fmt.Errorf("unsupported language %q", c.General.Language)
	}
	switch strings.ToLower(c.Display.ByteUnit) {
	case "auto", "kb", "mb", "gb":
	default:
		return fmt.Errorf("unsupported byte unit %q", c.Display.ByteUnit)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Log.Level)
	}
	return nil
}
