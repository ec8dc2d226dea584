// Factorgen - Synthetic Ratings Dataset Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/factorgen

package synth

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// knuthStride is the additive-hash constant (2^32 divided by the golden
// ratio) that scatters successive user selections across the id space.
const knuthStride = 2654435761

// Emitter walks the user population with the deterministic cursor stride and
// writes per-item ratings to a Sink.
//
// The cursor is shared across the whole run: it starts at zero and advances
// once per emitted rating, training and validation alike, and is never reset
// between items. Cursor advancement consumes no randomness.
type Emitter struct {
	users *FactorTable
	items *FactorTable
	sink  Sink

	// cursor is the running user selector. int64 keeps the stride addition
	// exact before the modulo regardless of platform int width.
	cursor int64
}

// NewEmitter creates an emitter over the given factor tables writing to sink.
func NewEmitter(users, items *FactorTable, sink Sink) *Emitter {
	return &Emitter{
		users: users,
		items: items,
		sink:  sink,
	}
}

// EmitItem writes degree training ratings followed by nvalidation validation
// ratings for the item at index item. Each rating advances the cursor first,
// then rates the selected user against the item.
func (e *Emitter) EmitItem(item, degree, nvalidation int) error {
	for i := 0; i < degree; i++ {
		if err := e.sink.WriteTraining(e.next(item)); err != nil {
			return fmt.Errorf("training rating for item %d: %w", item, err)
		}
	}

	for i := 0; i < nvalidation; i++ {
		if err := e.sink.WriteValidation(e.next(item)); err != nil {
			return fmt.Errorf("validation rating for item %d: %w", item, err)
		}
	}

	return nil
}

// next advances the cursor and builds the rating of the selected user for
// the given item index.
func (e *Emitter) next(item int) Rating {
	nusers := e.users.Rows()
	e.cursor = (e.cursor + knuthStride) % int64(nusers)

	user := int(e.cursor)
	return Rating{
		UserID: user,
		ItemID: item + nusers,
		Value:  floats.Dot(e.users.Factor(user), e.items.Factor(item)),
	}
}
