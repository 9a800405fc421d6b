// Package config provides configuration types and defaults for image-processor.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. IMAGE_PROCESSOR_LOG_LEVEL.
const EnvPrefix = "IMAGE_PROCESSOR"

// Config holds all configuration options for image-processor.
type Config struct {
	LogLevel   string `mapstructure:"log_level"`   // "debug", "info" (default), "warn" or "error"
	MosaicSeed int64  `mapstructure:"mosaic_seed"` // 0 seeds mosaics from the clock
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		LogLevel:   "info",
		MosaicSeed: 0,
	}
}

// SetDefaults registers Defaults() and the environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("mosaic_seed", d.MosaicSeed)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg for unsupported values.
func Validate(cfg Config) error {
	for _, l := range logLevels {
		if cfg.LogLevel == l {
			return nil
		}
	}
	return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), cfg.LogLevel)
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}
