// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package dataset

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/tomtom215/factorgen/internal/synth"
)

func testGenerationParams() GenerationParams {
	return GenerationParams{
		NUsers:      1000,
		NItems:      10000,
		NValidation: 2,
		Dimension:   20,
		Stdev:       2.0,
		Alpha:       1.8,
		Noise:       0.1,
		Seed:        31413,
		NFiles:      5,
	}
}

func TestManifest_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	set, err := Open(dir, 2)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := set.WriteTraining(synth.Rating{UserID: 0, ItemID: 10, Value: 1.25}); err != nil {
		t.Fatalf("WriteTraining() error = %v", err)
	}
	if err := set.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	summary := synth.Summary{
		ItemsProcessed:    1,
		TrainingRatings:   1,
		ValidationRatings: 0,
		MinDegree:         1,
		MaxDegree:         1,
	}

	manifest := NewManifest(set, testGenerationParams(), summary, 42*time.Millisecond)
	if manifest.RunID == "" {
		t.Error("RunID should not be empty")
	}
	if manifest.Format == "" {
		t.Error("Format should not be empty")
	}
	if err := manifest.Write(dir); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	loaded, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest() error = %v", err)
	}

	if loaded.RunID != manifest.RunID {
		t.Errorf("RunID = %s, want %s", loaded.RunID, manifest.RunID)
	}
	if loaded.Format != manifest.Format {
		t.Errorf("Format = %s, want %s", loaded.Format, manifest.Format)
	}
	if loaded.Params != manifest.Params {
		t.Errorf("Params = %+v, want %+v", loaded.Params, manifest.Params)
	}
	if loaded.Items != 1 {
		t.Errorf("Items = %d, want 1", loaded.Items)
	}
	if loaded.TrainingRecords != 1 {
		t.Errorf("TrainingRecords = %d, want 1", loaded.TrainingRecords)
	}
	if loaded.ValidationRecords != 0 {
		t.Errorf("ValidationRecords = %d, want 0", loaded.ValidationRecords)
	}
	if loaded.DurationMS != 42 {
		t.Errorf("DurationMS = %d, want 42", loaded.DurationMS)
	}
	if len(loaded.Shards) != 4 {
		t.Errorf("len(Shards) = %d, want 4", len(loaded.Shards))
	}

	for i, shard := range loaded.Shards {
		if shard.Checksum == "" {
			t.Errorf("shard %d: Checksum should not be empty", i)
		}
	}
}

func TestManifest_ShardTotalsMatchSummary(t *testing.T) {
	dir := t.TempDir()
	set, err := Open(dir, 3)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var training, validation int
	for user := 0; user < 7; user++ {
		if err := set.WriteTraining(synth.Rating{UserID: user, ItemID: 20, Value: 0.1}); err != nil {
			t.Fatalf("WriteTraining() error = %v", err)
		}
		training++
	}
	for user := 0; user < 2; user++ {
		if err := set.WriteValidation(synth.Rating{UserID: user, ItemID: 20, Value: 0.1}); err != nil {
			t.Fatalf("WriteValidation() error = %v", err)
		}
		validation++
	}
	if err := set.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	summary := synth.Summary{
		ItemsProcessed:    1,
		TrainingRatings:   training,
		ValidationRatings: validation,
		MinDegree:         7,
		MaxDegree:         7,
	}
	manifest := NewManifest(set, testGenerationParams(), summary, time.Second)

	var shardTraining, shardValidation int64
	for _, info := range manifest.Shards {
		switch info.Kind {
		case ShardKindTraining:
			shardTraining += info.Records
		case ShardKindValidation:
			shardValidation += info.Records
		}
	}

	if shardTraining != manifest.TrainingRecords {
		t.Errorf("shard training total = %d, manifest says %d", shardTraining, manifest.TrainingRecords)
	}
	if shardValidation != manifest.ValidationRecords {
		t.Errorf("shard validation total = %d, manifest says %d", shardValidation, manifest.ValidationRecords)
	}
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	if err == nil {
		t.Fatal("ReadManifest() expected error for missing manifest, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadManifest() error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestReadManifest_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/"+ManifestName, []byte("not json"), 0o640); err != nil {
		t.Fatalf("failed to write corrupt manifest: %v", err)
	}

	_, err := ReadManifest(dir)
	if err == nil {
		t.Fatal("ReadManifest() expected error for corrupt manifest, got nil")
	}
}
