// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package synth

// Rating is a single synthetic observation: one user's rating of one item.
type Rating struct {
	// UserID identifies the rating user, in [0, NUsers).
	UserID int

	// ItemID identifies the rated item. Item ids are offset by NUsers so
	// user and item ids occupy disjoint ranges: ItemID = item index + NUsers.
	ItemID int

	// Value is the rating value, the dot product of the user and item
	// latent factor vectors.
	Value float64
}

// Sink receives emitted ratings. Implementations decide placement; the
// generator itself is storage-agnostic.
//
// Both methods are called from a single goroutine in emission order.
// Returning an error aborts the generation run.
type Sink interface {
	// WriteTraining records a training rating.
	WriteTraining(r Rating) error

	// WriteValidation records a held-out validation rating.
	WriteValidation(r Rating) error
}
