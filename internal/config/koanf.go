// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"factorgen.yaml",
	"factorgen.yml",
	"/etc/factorgen/factorgen.yaml",
	"/etc/factorgen/factorgen.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Default returns the built-in reference defaults. Callers that need the
// default values outside of Load (flag registration, documentation) get a
// fresh copy they are free to modify.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns a Config struct with the reference default values.
// These defaults are applied first, then overridden by config file, env vars
// and flags.
func defaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			NUsers:      1000,
			NItems:      10000,
			NValidation: 2,
			Dimension:   20,
			Stdev:       2.0,
			Alpha:       1.8,
			Noise:       0.1, // recorded in the manifest, never applied to ratings
			Seed:        31413,
		},
		Output: OutputConfig{
			Dir:    "synthetic_data",
			NFiles: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// loadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in reference values
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables: override any setting
//  4. Flags: explicitly set command-line flags (highest priority)
func loadWithKoanf(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional unless explicitly requested)
	configPath, err := resolveConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables
	// Transform environment variable names to koanf paths:
	// NUSERS -> generator.nusers
	// OUTPUT_DIR -> output.dir
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Layer 4: Load command-line flags (highest priority).
	// Passing k makes unchanged flags defer to the layers above instead of
	// re-applying their pflag defaults.
	if flags != nil {
		flagProvider := posflag.ProviderWithValue(flags, ".", k,
			func(key, value string) (string, interface{}) {
				return flagTransformFunc(key), value
			})
		if err := k.Load(flagProvider, nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// Unmarshal into Config struct
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// resolveConfigFile determines which config file to load.
// An explicitly requested path must exist; the default paths and
// CONFIG_PATH are optional.
func resolveConfigFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}

	// Check environment variable next
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	// Search default paths
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}

// envMappings maps environment variable names to koanf config paths.
// NMOVIES is accepted as a legacy alias for NITEMS.
var envMappings = map[string]string{
	// Generator mappings
	"nusers":      "generator.nusers",
	"nitems":      "generator.nitems",
	"nmovies":     "generator.nitems",
	"nvalidation": "generator.nvalidation",
	"dimension":   "generator.dimension",
	"stdev":       "generator.stdev",
	"alpha":       "generator.alpha",
	"noise":       "generator.noise",
	"seed":        "generator.seed",

	// Output mappings
	"output_dir": "output.dir",
	"nfiles":     "output.nfiles",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - NUSERS -> generator.nusers
//   - OUTPUT_DIR -> output.dir
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// flagMappings maps command-line flag names to koanf config paths.
// The nmovies alias is normalized to nitems by the flag set itself before
// this mapping applies.
var flagMappings = map[string]string{
	"nusers":      "generator.nusers",
	"nitems":      "generator.nitems",
	"nvalidation": "generator.nvalidation",
	"dimension":   "generator.dimension",
	"stdev":       "generator.stdev",
	"alpha":       "generator.alpha",
	"noise":       "generator.noise",
	"seed":        "generator.seed",

	"dir":    "output.dir",
	"nfiles": "output.nfiles",

	"log-level":  "logging.level",
	"log-format": "logging.format",
	"log-caller": "logging.caller",
}

// flagTransformFunc transforms flag names to koanf config paths.
// Unmapped flags (such as --config) return empty string and are skipped.
func flagTransformFunc(name string) string {
	if mapped, ok := flagMappings[name]; ok {
		return mapped
	}
	return ""
}
