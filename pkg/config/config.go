// Package config resolves runtime configuration from defaults, config files,
// environment variables, and flags (via viper), overlaying configured values
// on top of built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/eliyastein/skills/pkg/catalog"
)

// Config holds the resolved settings for a single invocation.
type Config struct {
	// SourceRoot is the directory scanned for skill bundles.
	SourceRoot string `mapstructure:"source_root"`
	// InstallRoot is the directory installed skills are copied into.
	InstallRoot string `mapstructure:"install_root"`
	// Ignore lists directory base-name globs the scanner skips.
	Ignore []string `mapstructure:"ignore"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Tracing TracingConfig `mapstructure:"tracing"`
}

// TracingConfig controls the optional OpenTelemetry exporter.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	SamplerType  string  `mapstructure:"sampler_type"`
	SamplerRatio float64 `mapstructure:"sampler_ratio"`
}

// Default returns the built-in configuration: skills are discovered under a
// "skills" directory next to the running binary and installed under the
// per-user ~/.gemini/skills root.
func Default() Config {
	return Config{
		SourceRoot:  defaultSourceRoot(),
		InstallRoot: defaultInstallRoot(),
		Ignore:      catalog.DefaultIgnorePatterns,
		LogLevel:    "info",
		LogFormat:   "text",
		Tracing: TracingConfig{
			SamplerType:  "always",
			SamplerRatio: 1.0,
		},
	}
}

func defaultSourceRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "skills"
	}
	return filepath.Join(filepath.Dir(exe), "skills")
}

func defaultInstallRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gemini", "skills")
	}
	return filepath.Join(home, ".gemini", "skills")
}

// Load overlays viper's settings (flags, environment, config file) onto the
// defaults. Unset keys keep their default values.
func Load() (Config, error) {
	cfg := Default()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ZeroFields:       false,
	})
	if err != nil {
		return cfg, errors.Wrap(err, "failed to create config decoder")
	}
	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return cfg, errors.Wrap(err, "failed to decode configuration")
	}

	return cfg, nil
}
