// Package collision detects xxHash64 collisions between distinct string ids
// registered into the schema store's hashed category table. Collisions are
// vanishingly rare for category ids but the schema store must never
// silently merge two distinct categories, so every category registration is
// tracked here.
package collision

import (
	"github.com/skywave-atc/asterix/errs"
)

// Tracker tracks hashed ids and detects collisions between distinct strings
// that hash to the same 64-bit key.
type Tracker struct {
	byHash  map[uint64]string // hash -> first-registered id string
	ordered []string          // registration order, for deterministic iteration
	collide bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byHash: make(map[uint64]string),
	}
}

// Track registers id under hash. It returns errs.ErrHashCollision if a
// different id already occupies that hash, and errs.ErrDuplicateItemID if
// the same id is registered twice.
func (t *Tracker) Track(id string, hash uint64) error {
	if existing, ok := t.byHash[hash]; ok {
		if existing == id {
			return errs.ErrDuplicateItemID
		}
		t.collide = true

		return errs.ErrHashCollision
	}

	t.byHash[hash] = id
	t.ordered = append(t.ordered, id)

	return nil
}

// HasCollision reports whether any hash collision has ever been observed.
func (t *Tracker) HasCollision() bool {
	return t.collide
}

// Ids returns the registered ids in registration order.
func (t *Tracker) Ids() []string {
	return t.ordered
}

// Count returns the number of distinct ids tracked.
func (t *Tracker) Count() int {
	return len(t.ordered)
}

// Reset clears all tracked state, preserving allocated capacity.
func (t *Tracker) Reset() {
	for k := range t.byHash {
		delete(t.byHash, k)
	}
	t.ordered = t.ordered[:0]
	t.collide = false
}
