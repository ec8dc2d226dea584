// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/factorgen/internal/synth"
)

// ManifestName is the manifest file name within the dataset directory.
const ManifestName = "manifest.json"

// manifestFormat identifies the manifest schema version.
const manifestFormat = "factorgen/v1"

// GenerationParams echoes the configuration a dataset was generated with.
// Noise is recorded even though it is not applied to the ratings, so
// downstream readers see the configured value.
type GenerationParams struct {
	NUsers      int     `json:"nusers"`
	NItems      int     `json:"nitems"`
	NValidation int     `json:"nvalidation"`
	Dimension   int     `json:"dimension"`
	Stdev       float64 `json:"stdev"`
	Alpha       float64 `json:"alpha"`
	Noise       float64 `json:"noise"`
	Seed        uint64  `json:"seed"`
	NFiles      int     `json:"nfiles"`
}

// Manifest describes a finished dataset: identity, parameters, totals and
// the per-shard file inventory with checksums.
type Manifest struct {
	// Manifest schema identifier
	Format string `json:"format"`

	// Unique identifier for this generation run
	RunID string `json:"run_id"`

	// When the dataset was generated (UTC)
	CreatedAt time.Time `json:"created_at"`

	// Wall time of the generation run
	DurationMS int64 `json:"duration_ms"`

	// Parameter echo, including the seed needed to reproduce the dataset
	Params GenerationParams `json:"params"`

	// Number of items processed
	Items int `json:"items"`

	// Total training records across all shards
	TrainingRecords int64 `json:"training_records"`

	// Total validation records across all shards
	ValidationRecords int64 `json:"validation_records"`

	// Smallest and largest sampled item degree
	MinDegree int `json:"min_degree"`
	MaxDegree int `json:"max_degree"`

	// Per-shard inventory, training shards first
	Shards []ShardInfo `json:"shards"`
}

// NewManifest assembles a manifest for a closed shard set.
func NewManifest(set *ShardSet, params GenerationParams, summary synth.Summary, elapsed time.Duration) *Manifest {
	return &Manifest{
		Format:            manifestFormat,
		RunID:             uuid.New().String(),
		CreatedAt:         time.Now().UTC(),
		DurationMS:        elapsed.Milliseconds(),
		Params:            params,
		Items:             summary.ItemsProcessed,
		TrainingRecords:   int64(summary.TrainingRatings),
		ValidationRecords: int64(summary.ValidationRatings),
		MinDegree:         summary.MinDegree,
		MaxDegree:         summary.MaxDegree,
		Shards:            set.Stats(),
	}
}

// Write serializes the manifest as indented JSON into dir.
func (m *Manifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads the manifest from a dataset directory. The error
// wraps os.ErrNotExist when no manifest has been written.
//
//nolint:gosec // G304: path is the configured dataset directory
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}
