// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package config

import (
	"fmt"

	"github.com/tomtom215/factorgen/internal/validation"
)

// Validate checks that the configuration is complete and internally consistent.
// Struct tag constraints are checked first, then cross-field rules that tags
// cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	return c.validatePopulation()
}

// validatePopulation ensures the observed-degree population is non-empty.
// Degrees are sampled from a ranked population of NUSERS - NVALIDATION
// users, so NVALIDATION must stay strictly below NUSERS.
func (c *Config) validatePopulation() error {
	if c.Generator.NValidation >= c.Generator.NUsers {
		return fmt.Errorf("NVALIDATION (%d) must be less than NUSERS (%d): no population left to sample item degrees from",
			c.Generator.NValidation, c.Generator.NUsers)
	}
	return nil
}
