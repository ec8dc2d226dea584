// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomtom215/factorgen/internal/logging"
)

// Persistent flag values shared by every subcommand.
var (
	cfgFile   string
	logLevel  string
	logFormat string
	logCaller bool
)

var rootCmd = &cobra.Command{
	Use:   "factorgen",
	Short: "Factorgen - synthetic ratings dataset generator",
	Long: `Factorgen generates artificial ratings datasets for matrix-factorization
training and benchmarking: Gaussian latent factors, dot-product ratings,
power-law item connectivity, sharded TSV output with a validation holdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Early init from flags so messages before config load honor them.
		// generate re-initializes once the full configuration is resolved.
		logging.Init(logging.Config{
			Level:  logLevel,
			Format: logFormat,
			Caller: logCaller,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// normalizeFlags maps legacy flag spellings onto their canonical names.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "nmovies" {
		name = "nitems"
	}
	return pflag.NormalizedName(name)
}

//nolint:gochecknoinits // Cobra command registration requires init
func init() {
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log output format (json, console)")
	rootCmd.PersistentFlags().BoolVar(&logCaller, "log-caller", false, "Include caller file:line in logs")
}
