// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package synth

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// FactorTable holds latent factor vectors, one row per user or item.
// Rows are filled in row-major order from the shared random source at
// construction time and are immutable afterwards.
type FactorTable struct {
	rows int
	dim  int

	// factors is the rows x dim latent matrix.
	factors [][]float64
}

// NewFactorTable builds a table of rows factor vectors of dimension dim,
// each entry drawn i.i.d. from Normal(0, stdev) on src. The draw order is
// row-major, so two tables built back to back on the same source consume a
// well-defined prefix of the random stream each.
func NewFactorTable(src *rand.Rand, rows, dim int, stdev float64) *FactorTable {
	normal := distuv.Normal{
		Mu:    0,
		Sigma: stdev,
		Src:   src,
	}

	factors := make([][]float64, rows)
	for i := range factors {
		row := make([]float64, dim)
		for d := range row {
			row[d] = normal.Rand()
		}
		factors[i] = row
	}

	return &FactorTable{
		rows:    rows,
		dim:     dim,
		factors: factors,
	}
}

// Rows returns the number of factor vectors in the table.
func (t *FactorTable) Rows() int {
	return t.rows
}

// Dim returns the dimension of each factor vector.
func (t *FactorTable) Dim() int {
	return t.dim
}

// Factor returns the factor vector at index i. The returned slice is the
// table's backing storage and must not be modified.
func (t *FactorTable) Factor(i int) []float64 {
	return t.factors[i]
}
