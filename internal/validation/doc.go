// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

// Package validation provides struct validation using go-playground/validator v10.
//
// It exposes a thread-safe singleton validator instance used to check the
// configuration structs against their `validate` struct tags, and translates
// field errors into readable messages.
//
// # Quick Start
//
//	type OutputConfig struct {
//	    Dir    string `validate:"required"`
//	    NFiles int    `validate:"gte=1"`
//	}
//
//	if verr := validation.ValidateStruct(&cfg); verr != nil {
//	    return fmt.Errorf("configuration validation failed: %w", verr)
//	}
//
// # Common Validation Tags
//
// Numeric validations:
//   - gte=n: Greater than or equal to n
//   - lte=n: Less than or equal to n
//   - gt=n: Greater than n
//   - lt=n: Less than n
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// # Error Message Translation
//
// Human-readable messages are generated for common validation tags:
//
//	required   -> "Dir is required"
//	gte=1      -> "NFiles must be greater than or equal to 1"
//	oneof=a b  -> "Format must be one of: a b"
//
// # Thread Safety
//
// The singleton validator is initialized once, caches struct reflection
// information, and is safe for concurrent use.
package validation
