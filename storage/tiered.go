package storage

import (
	"context"
	"errors"
)

// Tiered composes an ordered list of stores into one: reads return the first
// tier that has the key, writes and deletes go to every tier. Tier order is
// priority order — put the fastest, most session-scoped tier first and the
// durable fallback tiers after it.
type Tiered struct {
	tiers []Store
}

// NewTiered creates a tiered store from the given tiers, highest priority first
func NewTiered(tiers ...Store) *Tiered {
	return &Tiered{tiers: tiers}
}

// Tiers returns the backing tiers in priority order
func (t *Tiered) Tiers() []Store {
	return t.tiers
}

// Get returns the value from the first tier that has the key. A tier that
// fails is skipped rather than aborting the read; a miss everywhere is not
// an error.
func (t *Tiered) Get(ctx context.Context, key string) (string, bool, error) {
	for _, tier := range t.tiers {
		value, ok, err := tier.Get(ctx, key)
		if err != nil {
			// Fall through to the next tier
			continue
		}
		if ok {
			return value, true, nil
		}
	}
	return "", false, nil
}

// Set writes the value to every tier. All tiers are attempted even when an
// earlier one fails; the combined error is returned.
func (t *Tiered) Set(ctx context.Context, key, value string) error {
	var errs []error
	for _, tier := range t.tiers {
		if err := tier.Set(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Delete removes the key from every tier
func (t *Tiered) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, tier := range t.tiers {
		if err := tier.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
