// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

/*
Package synth implements the synthetic ratings model.

The model plants a low-rank structure for matrix-factorization trainers to
recover: every user and every item gets a latent factor vector of dimension D
with i.i.d. Gaussian entries, and each observed rating is the dot product of
the two vectors involved.

Connectivity follows a power law. For a ranked population of size
nusers - nvalidation, rank i carries weight (i+1)^-alpha; the normalized
weights form a CDF and each item draws its observed degree by inverse-CDF
sampling, so a few items collect many ratings while most collect few. Users
for each rating are selected by a deterministic additive-hash cursor

	cursor = (cursor + 2654435761) mod nusers

that scatters successive selections across the id space. The cursor runs
across the entire generation, never resetting between items.

All randomness flows from a single seeded source in a fixed draw order
(user factors, then item factors, then one degree draw per item), so a given
seed and parameter set reproduces the dataset byte for byte.

# Usage

	gen, err := synth.NewGenerator(synth.Params{
	    NUsers:      1000,
	    NItems:      10000,
	    NValidation: 2,
	    Dimension:   20,
	    Stdev:       2,
	    Alpha:       1.8,
	    Seed:        31413,
	})
	if err != nil {
	    return err
	}
	summary, err := gen.Run(sink)

The Sink receives every rating as it is emitted; package dataset provides the
sharded TSV implementation.
*/
package synth
