// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package inspect

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/factorgen/internal/dataset"
	"github.com/tomtom215/factorgen/internal/synth"
)

// generateDataset produces a complete dataset with manifest in a temp
// directory and returns the directory and the generation summary.
func generateDataset(t *testing.T, p synth.Params, nfiles int, writeManifest bool) (string, *synth.Summary) {
	t.Helper()

	dir := t.TempDir()

	g, err := synth.NewGenerator(p)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	set, err := dataset.Open(dir, nfiles)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	summary, err := g.Run(set)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := set.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if writeManifest {
		params := dataset.GenerationParams{
			NUsers:      p.NUsers,
			NItems:      p.NItems,
			NValidation: p.NValidation,
			Dimension:   p.Dimension,
			Stdev:       p.Stdev,
			Alpha:       p.Alpha,
			Seed:        p.Seed,
			NFiles:      nfiles,
		}
		if err := dataset.NewManifest(set, params, *summary, time.Millisecond).Write(dir); err != nil {
			t.Fatalf("manifest Write() error = %v", err)
		}
	}

	return dir, summary
}

func inspectParams() synth.Params {
	return synth.Params{
		NUsers:      20,
		NItems:      10,
		NValidation: 2,
		Dimension:   4,
		Stdev:       2.0,
		Alpha:       1.8,
		Seed:        31413,
	}
}

func TestInspect(t *testing.T) {
	p := inspectParams()
	dir, summary := generateDataset(t, p, 2, true)

	ins, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer ins.Close()

	report, err := ins.Inspect(context.Background(), 5)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if report.Manifest == nil {
		t.Fatal("Manifest is nil, expected it to be loaded")
	}
	if report.Training.Records != int64(summary.TrainingRatings) {
		t.Errorf("Training.Records = %d, want %d", report.Training.Records, summary.TrainingRatings)
	}
	if report.Validation.Records != int64(summary.ValidationRatings) {
		t.Errorf("Validation.Records = %d, want %d", report.Validation.Records, summary.ValidationRatings)
	}
	if report.Training.DistinctUsers < 1 || report.Training.DistinctUsers > int64(p.NUsers) {
		t.Errorf("Training.DistinctUsers = %d, want within [1, %d]", report.Training.DistinctUsers, p.NUsers)
	}
	if report.Training.DistinctItems < 1 || report.Training.DistinctItems > int64(p.NItems) {
		t.Errorf("Training.DistinctItems = %d, want within [1, %d]", report.Training.DistinctItems, p.NItems)
	}
	if report.Training.MinRating > report.Training.MeanRating || report.Training.MeanRating > report.Training.MaxRating {
		t.Errorf("rating stats out of order: min=%v mean=%v max=%v",
			report.Training.MinRating, report.Training.MeanRating, report.Training.MaxRating)
	}

	if len(report.TopItems) == 0 || len(report.TopItems) > 5 {
		t.Fatalf("len(TopItems) = %d, want within [1, 5]", len(report.TopItems))
	}
	for i, item := range report.TopItems {
		if item.ItemID < int64(p.NUsers) || item.ItemID >= int64(p.NUsers+p.NItems) {
			t.Errorf("TopItems[%d].ItemID = %d, want within [%d, %d)", i, item.ItemID, p.NUsers, p.NUsers+p.NItems)
		}
		if item.Records < 1 {
			t.Errorf("TopItems[%d].Records = %d, want >= 1", i, item.Records)
		}
		if i > 0 && item.Records > report.TopItems[i-1].Records {
			t.Errorf("TopItems not sorted: [%d]=%d > [%d]=%d", i, item.Records, i-1, report.TopItems[i-1].Records)
		}
	}
}

func TestInspect_NoManifest(t *testing.T) {
	dir, _ := generateDataset(t, inspectParams(), 1, false)

	ins, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer ins.Close()

	report, err := ins.Inspect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if report.Manifest != nil {
		t.Error("Manifest should be nil when the directory has none")
	}
	if report.Training.Records == 0 {
		t.Error("Training.Records = 0, expected data from the shard files")
	}
}

func TestInspect_NoValidationRecords(t *testing.T) {
	p := inspectParams()
	p.NValidation = 0
	dir, _ := generateDataset(t, p, 1, true)

	ins, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer ins.Close()

	report, err := ins.Inspect(context.Background(), 3)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if report.Validation.Records != 0 {
		t.Errorf("Validation.Records = %d, want 0", report.Validation.Records)
	}
	if report.Validation.StddevRating != 0 {
		t.Errorf("Validation.StddevRating = %v, want 0 for empty split", report.Validation.StddevRating)
	}
}

func TestInspect_MissingDataset(t *testing.T) {
	ins, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer ins.Close()

	if _, err := ins.Inspect(context.Background(), 3); err == nil {
		t.Error("Inspect() expected error for a directory without shards, got nil")
	}
}
