// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

// Package logging provides centralized zerolog-based structured logging
// for Factorgen.
//
// All packages log through a single global zerolog logger so that output
// format and level are controlled in one place. JSON output is the default;
// console output is available for interactive use.
//
// # Quick Start
//
//	import "github.com/tomtom215/factorgen/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Int("nusers", n).Msg("Generating factors")
//	logging.Error().Err(err).Msg("Shard write failed")
//
// # Configuration
//
// The level and format are normally set from the command line (--log-level,
// --log-format) or the environment (LOG_LEVEL, LOG_FORMAT) via the config
// package.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("dir", dir).Msg("message")  // Correct
//	logging.Info().Str("dir", dir)                 // WRONG - log not emitted
package logging
