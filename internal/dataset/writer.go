// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

/*
writer.go - Sharded TSV Output

This file implements the ShardSet sink that partitions generated ratings
across multiple tab-separated files.

Output Directory Layout:

	<dir>/
	├── graph_0.tsv              (training shard 0)
	├── graph_0.tsv.validate     (validation shard 0)
	├── ...
	├── graph_<n-1>.tsv
	├── graph_<n-1>.tsv.validate
	└── manifest.json            (written separately after a successful run)

Record Format:

	<user_id>\t<item_id>\t<rating>\n

with the rating in Go's shortest round-trip decimal form. A record for
user u goes to shard u mod nfiles, on the training or validation side
depending on which phase emitted it.

Failure Model:
  - Any create failure during Open is terminal; partially opened files
    are closed best-effort and the error is returned.
  - Write failures surface immediately so the caller can abort the run.
    Partial output may remain on disk; the process exits non-zero.
*/

//nolint:staticcheck // File documentation, not package doc
package dataset

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tomtom215/factorgen/internal/synth"
)

// shardBufferSize is the bufio buffer size per output file.
const shardBufferSize = 64 * 1024

// Shard kinds recorded in manifest entries.
const (
	ShardKindTraining   = "training"
	ShardKindValidation = "validation"
)

// ErrInvalidShardCount indicates a non-positive nfiles value.
var ErrInvalidShardCount = errors.New("dataset: shard count must be positive")

// TrainingShardName returns the file name of training shard i.
func TrainingShardName(i int) string {
	return fmt.Sprintf("graph_%d.tsv", i)
}

// ValidationShardName returns the file name of validation shard i.
func ValidationShardName(i int) string {
	return TrainingShardName(i) + ".validate"
}

// ShardInfo describes one finished shard file for the manifest.
type ShardInfo struct {
	// File name within the dataset directory
	Name string `json:"name"`

	// Either "training" or "validation"
	Kind string `json:"kind"`

	// Shard index in [0, nfiles)
	Index int `json:"index"`

	// Number of rating records written
	Records int64 `json:"records"`

	// Bytes written
	Bytes int64 `json:"bytes"`

	// SHA-256 checksum of the file contents (hex)
	Checksum string `json:"checksum"`
}

// shard is a single buffered output file with a running SHA-256 checksum.
type shard struct {
	name   string
	file   *os.File
	bufw   *bufio.Writer
	hasher hash.Hash
	w      io.Writer

	records int64
	bytes   int64
	line    []byte
}

//nolint:gosec // G304: path is built from the configured output directory
func openShard(dir, name string) (*shard, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create shard file %s: %w", path, err)
	}

	s := &shard{
		name:   name,
		file:   f,
		bufw:   bufio.NewWriterSize(f, shardBufferSize),
		hasher: sha256.New(),
		line:   make([]byte, 0, 64),
	}
	s.w = io.MultiWriter(s.bufw, s.hasher)
	return s, nil
}

func (s *shard) writeRating(r synth.Rating) error {
	s.line = s.line[:0]
	s.line = strconv.AppendInt(s.line, int64(r.UserID), 10)
	s.line = append(s.line, '\t')
	s.line = strconv.AppendInt(s.line, int64(r.ItemID), 10)
	s.line = append(s.line, '\t')
	s.line = strconv.AppendFloat(s.line, r.Value, 'g', -1, 64)
	s.line = append(s.line, '\n')

	n, err := s.w.Write(s.line)
	if err != nil {
		return fmt.Errorf("failed to write to shard %s: %w", s.name, err)
	}
	s.records++
	s.bytes += int64(n)
	return nil
}

func (s *shard) close() error {
	flushErr := s.bufw.Flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush shard %s: %w", s.name, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close shard %s: %w", s.name, closeErr)
	}
	return nil
}

func (s *shard) checksum() string {
	return hex.EncodeToString(s.hasher.Sum(nil))
}

// ShardSet routes ratings into per-shard training and validation files.
// It implements synth.Sink.
type ShardSet struct {
	dir        string
	training   []*shard
	validation []*shard
	closed     bool
}

// Open creates the output directory and opens nfiles training and nfiles
// validation shard files, truncating any existing contents.
func Open(dir string, nfiles int) (*ShardSet, error) {
	if nfiles < 1 {
		return nil, fmt.Errorf("nfiles %d: %w", nfiles, ErrInvalidShardCount)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	set := &ShardSet{dir: dir}
	for i := 0; i < nfiles; i++ {
		s, err := openShard(dir, TrainingShardName(i))
		if err != nil {
			set.abort()
			return nil, err
		}
		set.training = append(set.training, s)
	}
	for i := 0; i < nfiles; i++ {
		s, err := openShard(dir, ValidationShardName(i))
		if err != nil {
			set.abort()
			return nil, err
		}
		set.validation = append(set.validation, s)
	}
	return set, nil
}

// abort closes every file opened so far after a failed Open.
func (ss *ShardSet) abort() {
	for _, s := range ss.training {
		_ = s.file.Close() //nolint:errcheck // best-effort cleanup on open failure
	}
	for _, s := range ss.validation {
		_ = s.file.Close() //nolint:errcheck // best-effort cleanup on open failure
	}
}

// Dir returns the dataset directory.
func (ss *ShardSet) Dir() string {
	return ss.dir
}

// NFiles returns the number of shard pairs.
func (ss *ShardSet) NFiles() int {
	return len(ss.training)
}

// WriteTraining writes r to the training side of shard UserID mod nfiles.
func (ss *ShardSet) WriteTraining(r synth.Rating) error {
	return ss.training[r.UserID%len(ss.training)].writeRating(r)
}

// WriteValidation writes r to the validation side of shard UserID mod nfiles.
func (ss *ShardSet) WriteValidation(r synth.Rating) error {
	return ss.validation[r.UserID%len(ss.validation)].writeRating(r)
}

// Close flushes and closes every shard file, returning the first error
// encountered while still closing the rest. Subsequent calls are no-ops,
// so Close is safe both deferred and called explicitly to check the error.
func (ss *ShardSet) Close() error {
	if ss.closed {
		return nil
	}
	ss.closed = true

	var firstErr error
	for _, s := range ss.training {
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, s := range ss.validation {
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Stats reports per-shard record counts, sizes and checksums, training
// shards first. Checksums are final only after Close.
func (ss *ShardSet) Stats() []ShardInfo {
	infos := make([]ShardInfo, 0, len(ss.training)+len(ss.validation))
	for i, s := range ss.training {
		infos = append(infos, ShardInfo{
			Name:     s.name,
			Kind:     ShardKindTraining,
			Index:    i,
			Records:  s.records,
			Bytes:    s.bytes,
			Checksum: s.checksum(),
		})
	}
	for i, s := range ss.validation {
		infos = append(infos, ShardInfo{
			Name:     s.name,
			Kind:     ShardKindValidation,
			Index:    i,
			Records:  s.records,
			Bytes:    s.bytes,
			Checksum: s.checksum(),
		})
	}
	return infos
}
