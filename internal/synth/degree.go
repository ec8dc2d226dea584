// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package synth

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// ErrEmptyPopulation is returned when the degree population is not positive,
// which happens when nvalidation consumes all of nusers.
var ErrEmptyPopulation = errors.New("synth: degree population must be positive")

// DegreeSampler draws per-item observed degrees from a power-law
// distribution over a ranked population.
//
// Rank i in [0, population) carries weight (i+1)^-alpha. The normalized
// weights are prefix-summed into a CDF once at construction; each Sample
// performs one uniform draw and an inverse-CDF search.
type DegreeSampler struct {
	cdf []float64
	src *rand.Rand
}

// NewDegreeSampler builds the power-law CDF for the given population size
// and exponent. Construction consumes no randomness; only Sample draws from
// src.
func NewDegreeSampler(src *rand.Rand, population int, alpha float64) (*DegreeSampler, error) {
	if population <= 0 {
		return nil, fmt.Errorf("population %d: %w", population, ErrEmptyPopulation)
	}

	cdf := make([]float64, population)
	for i := range cdf {
		cdf[i] = math.Pow(float64(i+1), -alpha)
	}

	total := floats.Sum(cdf)
	floats.Scale(1/total, cdf)
	floats.CumSum(cdf, cdf)

	return &DegreeSampler{
		cdf: cdf,
		src: src,
	}, nil
}

// Population returns the size of the ranked population.
func (s *DegreeSampler) Population() int {
	return len(s.cdf)
}

// Sample draws one observed degree in [1, population].
//
// The degree is the first CDF index covering a uniform draw, plus one, so a
// degree of zero is impossible. If floating-point rounding leaves the final
// CDF entry fractionally below 1 and the draw lands beyond it, the index
// clamps to the last entry rather than failing.
func (s *DegreeSampler) Sample() int {
	u := s.src.Float64()

	idx := sort.Search(len(s.cdf), func(i int) bool { return s.cdf[i] >= u })
	if idx == len(s.cdf) {
		idx = len(s.cdf) - 1
	}

	return idx + 1
}
