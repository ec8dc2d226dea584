// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/factorgen/internal/config"
	"github.com/tomtom215/factorgen/internal/inspect"
	"github.com/tomtom215/factorgen/internal/logging"
)

var (
	inspectDir string
	inspectTop int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a generated dataset",
	Long: `Summarize a generated dataset directory.

The shard files are scanned in place with DuckDB read_csv; nothing is
copied or imported. The report covers record counts, distinct user and
item counts and rating statistics for both splits, plus the most-rated
items, where the power-law head is visible. The manifest is included
when present.

Examples:
  factorgen inspect
  factorgen inspect --dir /data/synth --top 20`,
	RunE: runInspect,
}

//nolint:gochecknoinits // Cobra command registration requires init
func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectDir, "dir", config.Default().Output.Dir, "Dataset directory to inspect")
	inspectCmd.Flags().IntVar(&inspectTop, "top", inspect.DefaultTopItems, "Number of most-rated items to report")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	ins, err := inspect.New(inspectDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := ins.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing inspector")
		}
	}()

	report, err := ins.Inspect(cmd.Context(), inspectTop)
	if err != nil {
		return err
	}

	logReport(report)
	return nil
}

func logReport(report *inspect.Report) {
	if report.Manifest != nil {
		logging.Info().
			Str("run_id", report.Manifest.RunID).
			Time("created_at", report.Manifest.CreatedAt).
			Uint64("seed", report.Manifest.Params.Seed).
			Int("nusers", report.Manifest.Params.NUsers).
			Int("nitems", report.Manifest.Params.NItems).
			Int("dimension", report.Manifest.Params.Dimension).
			Msg("Manifest")
	} else {
		logging.Warn().Str("dir", report.Dir).Msg("No manifest found, reporting from shard files only")
	}

	logSplit("training", report.Training)
	logSplit("validation", report.Validation)

	for i, item := range report.TopItems {
		logging.Info().
			Int("rank", i+1).
			Int64("item_id", item.ItemID).
			Int64("records", item.Records).
			Msg("Top item")
	}
}

func logSplit(name string, s inspect.SplitStats) {
	logging.Info().
		Str("split", name).
		Int64("records", s.Records).
		Int64("distinct_users", s.DistinctUsers).
		Int64("distinct_items", s.DistinctItems).
		Float64("min_rating", s.MinRating).
		Float64("max_rating", s.MaxRating).
		Float64("mean_rating", s.MeanRating).
		Float64("stddev_rating", s.StddevRating).
		Msg("Split statistics")
}
