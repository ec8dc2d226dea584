// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package inspect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/factorgen/internal/dataset"
)

// DefaultTopItems is the ranking size used when no limit is given.
const DefaultTopItems = 10

// Shard globs within the dataset directory.
const (
	trainingGlob   = "graph_*.tsv"
	validationGlob = "graph_*.tsv.validate"
)

// SplitStats aggregates one side of a dataset.
type SplitStats struct {
	Records       int64   `json:"records"`
	DistinctUsers int64   `json:"distinct_users"`
	DistinctItems int64   `json:"distinct_items"`
	MinRating     float64 `json:"min_rating"`
	MaxRating     float64 `json:"max_rating"`
	MeanRating    float64 `json:"mean_rating"`
	StddevRating  float64 `json:"stddev_rating"`
}

// ItemCount is one row of the most-rated-items ranking.
type ItemCount struct {
	ItemID  int64 `json:"item_id"`
	Records int64 `json:"records"`
}

// Report is the full inspection result for a dataset directory.
type Report struct {
	Dir string `json:"dir"`

	// Manifest is nil when the directory has no manifest.json.
	Manifest *dataset.Manifest `json:"manifest,omitempty"`

	Training   SplitStats `json:"training"`
	Validation SplitStats `json:"validation"`

	// TopItems ranks training records per item, descending.
	TopItems []ItemCount `json:"top_items"`
}

// Inspector runs aggregate queries over a dataset directory through an
// in-memory DuckDB instance.
type Inspector struct {
	conn *sql.DB
	dir  string
}

// New opens an in-memory DuckDB for the dataset under dir.
func New(dir string) (*Inspector, error) {
	conn, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return &Inspector{conn: conn, dir: dir}, nil
}

// Close releases the database connection.
func (ins *Inspector) Close() error {
	return ins.conn.Close()
}

// Inspect aggregates both splits and the top-rated items. topN <= 0 uses
// DefaultTopItems. A missing manifest is not an error.
func (ins *Inspector) Inspect(ctx context.Context, topN int) (*Report, error) {
	if topN <= 0 {
		topN = DefaultTopItems
	}

	report := &Report{Dir: ins.dir}

	manifest, err := dataset.ReadManifest(ins.dir)
	switch {
	case err == nil:
		report.Manifest = manifest
	case errors.Is(err, os.ErrNotExist):
		// Shard files alone are enough to inspect.
	default:
		return nil, err
	}

	if report.Training, err = ins.splitStats(ctx, trainingGlob); err != nil {
		return nil, fmt.Errorf("training split: %w", err)
	}
	if report.Validation, err = ins.splitStats(ctx, validationGlob); err != nil {
		return nil, fmt.Errorf("validation split: %w", err)
	}
	if report.TopItems, err = ins.topItems(ctx, topN); err != nil {
		return nil, err
	}

	return report, nil
}

// readCSVExpr builds a read_csv source over a shard glob with the fixed
// TSV schema. Explicit columns keep empty validation shards readable.
func (ins *Inspector) readCSVExpr(glob string) string {
	path := filepath.Join(ins.dir, glob)
	return fmt.Sprintf(
		`read_csv(%s, delim='\t', header=false, columns={'user_id': 'BIGINT', 'item_id': 'BIGINT', 'rating': 'DOUBLE'})`,
		sqlStringLiteral(path),
	)
}

// sqlStringLiteral quotes s as a SQL string literal.
func sqlStringLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (ins *Inspector) splitStats(ctx context.Context, glob string) (SplitStats, error) {
	// COALESCE keeps the scan targets non-null when a split is empty.
	query := fmt.Sprintf(`
		SELECT
			COUNT(*) AS records,
			COUNT(DISTINCT user_id) AS distinct_users,
			COUNT(DISTINCT item_id) AS distinct_items,
			COALESCE(MIN(rating), 0) AS min_rating,
			COALESCE(MAX(rating), 0) AS max_rating,
			COALESCE(AVG(rating), 0) AS mean_rating,
			COALESCE(STDDEV_POP(rating), 0) AS stddev_rating
		FROM %s`, ins.readCSVExpr(glob))

	var s SplitStats
	row := ins.conn.QueryRowContext(ctx, query)
	if err := row.Scan(
		&s.Records,
		&s.DistinctUsers,
		&s.DistinctItems,
		&s.MinRating,
		&s.MaxRating,
		&s.MeanRating,
		&s.StddevRating,
	); err != nil {
		return SplitStats{}, fmt.Errorf("aggregate over %s: %w", glob, err)
	}
	return s, nil
}

func (ins *Inspector) topItems(ctx context.Context, limit int) ([]ItemCount, error) {
	// Tie-break on item_id so the ranking is deterministic.
	query := fmt.Sprintf(`
		SELECT item_id, COUNT(*) AS records
		FROM %s
		GROUP BY item_id
		ORDER BY records DESC, item_id
		LIMIT %d`, ins.readCSVExpr(trainingGlob), limit)

	rows, err := ins.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("top items query: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only result set

	var items []ItemCount
	for rows.Next() {
		var ic ItemCount
		if err := rows.Scan(&ic.ItemID, &ic.Records); err != nil {
			return nil, fmt.Errorf("scan top item row: %w", err)
		}
		items = append(items, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top items iteration: %w", err)
	}
	return items, nil
}
