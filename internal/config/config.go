// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package config

import (
	"github.com/spf13/pflag"
)

// Config holds all generator configuration loaded from defaults, an optional
// YAML config file, environment variables and command-line flags.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: the reference parameter values
//  2. Config File: optional YAML file for persistent settings
//  3. Environment Variables: override any setting
//  4. Flags: explicit command-line flags win over everything
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Generator GeneratorConfig `koanf:"generator"`
	Output    OutputConfig    `koanf:"output"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// GeneratorConfig holds the synthetic dataset parameters.
//
// The defaults reproduce the reference dataset: 1000 users rating 10000 items
// in a 20-dimensional latent space, degree distribution shaped by alpha=1.8,
// two validation ratings per item, seeded with 31413.
type GeneratorConfig struct {
	// NUsers is the number of synthetic users.
	// Must exceed NValidation so the observed-degree population is non-empty.
	NUsers int `koanf:"nusers" validate:"gte=1"`

	// NItems is the number of synthetic items. Item ids in the output are
	// offset by NUsers so user and item ids occupy disjoint ranges.
	// NMOVIES is accepted as a legacy alias for this setting.
	NItems int `koanf:"nitems" validate:"gte=0"`

	// NValidation is the number of held-out validation ratings emitted per item.
	NValidation int `koanf:"nvalidation" validate:"gte=0"`

	// Dimension is the latent factor dimension D.
	Dimension int `koanf:"dimension" validate:"gte=1,lte=4096"`

	// Stdev is the standard deviation of the Gaussian latent factor values.
	Stdev float64 `koanf:"stdev" validate:"gte=0"`

	// Alpha is the power-law exponent shaping the item degree distribution.
	// Larger values concentrate ratings on low-degree counts.
	Alpha float64 `koanf:"alpha" validate:"gt=0"`

	// Noise is parsed and echoed in the run manifest but not applied to
	// ratings; downstream tooling expects to see the configured value.
	Noise float64 `koanf:"noise" validate:"gte=0"`

	// Seed seeds the shared random source. Identical seed and parameters
	// reproduce byte-identical output.
	Seed uint64 `koanf:"seed"`
}

// OutputConfig holds output location and sharding settings.
type OutputConfig struct {
	// Dir is the output directory. Created if missing; existing shard files
	// are truncated.
	Dir string `koanf:"dir" validate:"required"`

	// NFiles is the number of training shards (and validation shards).
	// Each rating is routed to shard user_id mod NFiles.
	NFiles int `koanf:"nfiles" validate:"gte=1,lte=100000"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error"`

	// Format is the log output format: json or console.
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all layers and validates it.
//
// path is an explicit config file path (from --config); when empty the
// default locations and CONFIG_PATH are searched. flags is the parsed
// command-line flag set; it may be nil when no flag layer applies.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	return loadWithKoanf(path, flags)
}

// Population returns the size of the ranked population that observed item
// degrees are sampled from: NUsers minus the NValidation slots held out per
// item. An item's training degree never exceeds this value.
func (c *Config) Population() int {
	return c.Generator.NUsers - c.Generator.NValidation
}
