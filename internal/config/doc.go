// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

/*
Package config provides centralized configuration management for Factorgen.

This package handles loading, layering and validation of generator settings.
It ensures every run starts from a fully validated parameter set and provides
the reference defaults for all optional settings.

# Configuration Sources

Configuration is loaded with Koanf v2 from four layers, later layers
overriding earlier ones:

 1. Built-in defaults (the reference parameter values)
 2. Optional YAML config file (factorgen.yaml, or CONFIG_PATH / --config)
 3. Environment variables (NUSERS, ALPHA, OUTPUT_DIR, ...)
 4. Command-line flags (--nusers, --alpha, --dir, ...)

# Configuration Structure

The package organizes configuration into logical groups:

  - GeneratorConfig: population sizes, latent dimension, power-law shape, seed
  - OutputConfig: output directory and shard count
  - LoggingConfig: log level and format

# Environment Variables

Generator (GeneratorConfig):
  - NUSERS: Number of users (default: 1000)
  - NITEMS: Number of items (default: 10000; NMOVIES is accepted as an alias)
  - NVALIDATION: Validation ratings per item (default: 2)
  - DIMENSION: Latent factor dimension (default: 20)
  - STDEV: Std deviation of latent factor values (default: 2)
  - ALPHA: Power-law degree exponent (default: 1.8)
  - NOISE: Reserved noise level, parsed but not applied (default: 0.1)
  - SEED: Random source seed (default: 31413)

Output (OutputConfig):
  - OUTPUT_DIR: Output directory (default: synthetic_data)
  - NFILES: Training/validation shard count (default: 5)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: console)
  - LOG_CALLER: Include caller file:line (default: false)

# Validation

Load returns an error before any output file is touched if:
  - a struct tag constraint fails (nfiles < 1, dimension < 1, alpha <= 0, ...)
  - NVALIDATION >= NUSERS, which would leave no population to sample
    observed degrees from

Config is immutable after Load and safe for concurrent read access.
*/
package config
