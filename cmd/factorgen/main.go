// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

// Package main is the entry point for the factorgen command-line tool.
//
// Factorgen synthesizes artificial ratings datasets for matrix-factorization
// training and benchmarking. Users and items receive Gaussian latent factor
// vectors, every emitted rating is the dot product of a user and an item
// vector, and the number of ratings per item follows a power-law degree
// distribution, so the generated data carries both a planted low-rank
// structure and a realistic long-tail connectivity profile.
//
// # Commands
//
//	generate  - generate a sharded ratings dataset (training + validation)
//	inspect   - summarize an existing dataset with DuckDB aggregate queries
//
// # Output
//
// A run produces nfiles training shards (graph_<i>.tsv) and nfiles
// validation shards (graph_<i>.tsv.validate) under the output directory,
// plus a manifest.json recording the run id, the full parameter echo and
// per-shard record counts and SHA-256 checksums. Each shard line is a
// tab-separated triple:
//
//	<user_id>\t<item_id>\t<rating>
//
// Item ids are offset by nusers so user and item ids occupy disjoint
// ranges. A rating for user u is always routed to shard u mod nfiles.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Command-line flags
//   - Environment variables (NUSERS, NITEMS, DIMENSION, ALPHA, STDEV,
//     NVALIDATION, NOISE, SEED, NFILES, OUTPUT_DIR, LOG_LEVEL, LOG_FORMAT)
//   - Config file (--config, CONFIG_PATH, or factorgen.yaml)
//   - Built-in defaults
//
// NMOVIES and --nmovies are accepted as legacy aliases for the item count.
//
// # Determinism
//
// Generation is single-threaded and draws from one seeded random source in
// a fixed order, so identical parameters and seed reproduce byte-identical
// shard files. The default seed is 31413.
//
// # Example Usage
//
// Generate the reference dataset (1000 users, 10000 items, 20 dimensions):
//
//	factorgen generate
//
// A larger dataset in a custom location:
//
//	factorgen generate --dir /data/synth --nusers 50000 --nitems 200000 \
//	  --dimension 64 --nfiles 16
//
// Environment-driven, as a batch job:
//
//	export OUTPUT_DIR=/data/synth
//	export NUSERS=50000
//	export NITEMS=200000
//	factorgen generate --log-format json
//
// Summarize what was generated:
//
//	factorgen inspect --dir /data/synth --top 20
package main

import (
	"github.com/tomtom215/factorgen/internal/logging"
)

func main() {
	if err := Execute(); err != nil {
		logging.Fatal().Err(err).Msg("Command failed")
	}
}
