// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package synth

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/tomtom215/factorgen/internal/logging"
)

// Generation errors.
var (
	// ErrInvalidDimension is returned when the latent dimension is not positive.
	ErrInvalidDimension = errors.New("synth: factor dimension must be positive")

	// ErrInvalidItemCount is returned when the item count is negative.
	ErrInvalidItemCount = errors.New("synth: item count must be non-negative")
)

// progressInterval is the number of items between progress log entries.
const progressInterval = 1000

// Params holds the inputs of a generation run.
type Params struct {
	// NUsers is the number of synthetic users.
	NUsers int

	// NItems is the number of synthetic items.
	NItems int

	// NValidation is the number of validation ratings emitted per item.
	// It also shrinks the degree population: training degrees are sampled
	// from NUsers - NValidation ranks.
	NValidation int

	// Dimension is the latent factor dimension D.
	Dimension int

	// Stdev is the standard deviation of the Gaussian factor entries.
	Stdev float64

	// Alpha is the power-law exponent of the degree distribution.
	Alpha float64

	// Seed seeds the shared random source.
	Seed uint64
}

// Summary reports what a completed run produced.
type Summary struct {
	// ItemsProcessed is the number of items that emitted ratings.
	ItemsProcessed int

	// TrainingRatings is the total number of training ratings written,
	// the sum of all sampled degrees.
	TrainingRatings int

	// ValidationRatings is the total number of validation ratings written.
	ValidationRatings int

	// MinDegree and MaxDegree bound the sampled per-item degrees.
	// Both are zero when no items were processed.
	MinDegree int
	MaxDegree int
}

// Generator orchestrates a generation run: factor tables, degree
// distribution and per-item emission, all fed by one seeded source.
type Generator struct {
	params  Params
	users   *FactorTable
	items   *FactorTable
	degrees *DegreeSampler
}

// NewGenerator validates params and performs every random draw that precedes
// emission: the full user factor table, then the full item factor table. The
// degree CDF is built afterwards without consuming randomness, preserving
// the reproducible draw order.
func NewGenerator(p Params) (*Generator, error) {
	if p.Dimension <= 0 {
		return nil, fmt.Errorf("dimension %d: %w", p.Dimension, ErrInvalidDimension)
	}
	if p.NItems < 0 {
		return nil, fmt.Errorf("nitems %d: %w", p.NItems, ErrInvalidItemCount)
	}

	population := p.NUsers - p.NValidation
	if population <= 0 {
		return nil, fmt.Errorf("nusers %d, nvalidation %d: %w", p.NUsers, p.NValidation, ErrEmptyPopulation)
	}

	src := rand.New(rand.NewSource(p.Seed))

	logging.Debug().
		Int("nusers", p.NUsers).
		Int("dimension", p.Dimension).
		Float64("stdev", p.Stdev).
		Msg("Sampling user factors")
	users := NewFactorTable(src, p.NUsers, p.Dimension, p.Stdev)

	logging.Debug().
		Int("nitems", p.NItems).
		Msg("Sampling item factors")
	items := NewFactorTable(src, p.NItems, p.Dimension, p.Stdev)

	degrees, err := NewDegreeSampler(src, population, p.Alpha)
	if err != nil {
		return nil, err
	}

	return &Generator{
		params:  p,
		users:   users,
		items:   items,
		degrees: degrees,
	}, nil
}

// Users returns the user factor table.
func (g *Generator) Users() *FactorTable {
	return g.users
}

// Items returns the item factor table.
func (g *Generator) Items() *FactorTable {
	return g.items
}

// Run emits ratings for every item into sink and returns the run summary.
//
// Items are processed in index order; each samples one degree and then
// emits that many training ratings plus NValidation validation ratings.
// The first sink error aborts the run.
func (g *Generator) Run(sink Sink) (*Summary, error) {
	emitter := NewEmitter(g.users, g.items, sink)
	summary := &Summary{}

	for item := 0; item < g.params.NItems; item++ {
		degree := g.degrees.Sample()

		if err := emitter.EmitItem(item, degree, g.params.NValidation); err != nil {
			return nil, fmt.Errorf("item %d of %d: %w", item, g.params.NItems, err)
		}

		summary.ItemsProcessed++
		summary.TrainingRatings += degree
		summary.ValidationRatings += g.params.NValidation

		if summary.ItemsProcessed == 1 || degree < summary.MinDegree {
			summary.MinDegree = degree
		}
		if degree > summary.MaxDegree {
			summary.MaxDegree = degree
		}

		if (item+1)%progressInterval == 0 {
			logging.Debug().
				Int("items", item+1).
				Int("training_ratings", summary.TrainingRatings).
				Msg("Generation progress")
		}
	}

	return summary, nil
}
