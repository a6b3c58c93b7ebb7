package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

// EnvPrefix is the prefix for environment variables overriding settings.
const EnvPrefix = "GOCIPHER"

// NewViper returns a viper instance reading GOCIPHER_* environment variables,
// with dashes in keys mapped to underscores.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadSettings merges a JSONC settings file into v. Values already set through
// flags or the environment take precedence.
func LoadSettings(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return fmt.Errorf("reading settings file %q: %w", path, err)
	}

	v.SetConfigType("json")

	if err := v.MergeConfig(bytes.NewReader(jsonc.ToJSONInPlace(data))); err != nil {
		return fmt.Errorf("parsing settings file %q: %w", path, err)
	}

	return nil
}

// Resolve unmarshals v into a Config, reading the key from KeyFile when set,
// and validates the result.
func Resolve(v *viper.Viper) (*Config, error) {
	var cfg Config

	if path := v.GetString("settings"); path != "" {
		if err := LoadSettings(v, path); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.KeyFile != "" {
		data, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		cfg.Key = strings.TrimSpace(string(data))
	}

	return &cfg, nil
}
