// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

// Package dataset writes generated ratings to sharded TSV files on disk.
//
// A ShardSet owns the output directory and one file pair per shard: a
// training file (graph_<i>.tsv) and a validation file
// (graph_<i>.tsv.validate). Records are routed to shard user_id mod nfiles,
// so all ratings for a given user land in the same pair. Writers are
// buffered and a running SHA-256 checksum is kept per file.
//
// After a successful run a Manifest carrying the run id, the parameter
// echo, per-shard record counts and checksums is written alongside the
// shards as manifest.json.
//
// Usage:
//
//	set, err := dataset.Open("synthetic_data", 5)
//	if err != nil {
//	    return err
//	}
//	defer set.Close()
//
//	summary, err := generator.Run(set)
//	if err != nil {
//	    return err
//	}
//	if err := set.Close(); err != nil {
//	    return err
//	}
//
//	manifest := dataset.NewManifest(set, params, *summary, time.Since(start))
//	if err := manifest.Write(set.Dir()); err != nil {
//	    return err
//	}
//
// ShardSet is not safe for concurrent use; generation writes from a single
// goroutine.
package dataset
