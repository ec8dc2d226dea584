// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

// Package inspect summarizes a generated dataset directory with read-only
// aggregate queries.
//
// An Inspector opens an in-memory DuckDB instance and scans the shard
// files directly via read_csv, so no data is copied or imported. It
// reports record counts, distinct user/item counts and rating statistics
// for the training and validation splits, plus the most-rated items,
// which makes the power-law connectivity visible at a glance.
//
// The manifest is read when present but a dataset without one is still
// inspectable from the shard files alone.
//
// Usage:
//
//	ins, err := inspect.New("synthetic_data")
//	if err != nil {
//	    return err
//	}
//	defer ins.Close()
//
//	report, err := ins.Inspect(ctx, 10)
package inspect
