package collection

import (
	"context"
	"encoding/json"

	"agrox/internal/errors"
)

// Value is a typed view over a single JSON value stored under one key
// (currentUser, isLoggedIn, editListingId).
type Value[T any] struct {
	store *Store
	key   string
}

// NewValue returns a Value of T stored under key.
func NewValue[T any](store *Store, key string) *Value[T] {
	return &Value[T]{store: store, key: key}
}

// Get returns the value and whether it was present and well formed.
func (v *Value[T]) Get(ctx context.Context) (T, bool, error) {
	var value T

	raw, err := v.store.read(ctx, v.key)
	if err != nil || raw == nil {
		return value, false, err
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		v.store.recovered(ctx, &LoadWarning{Key: v.key, Dropped: 1, Cause: errors.Wrap(err, "decode value")})

		var zero T

		return zero, false, nil
	}

	return value, true, nil
}

// Set replaces the value.
func (v *Value[T]) Set(ctx context.Context, value T) error {
	return v.store.write(ctx, v.key, value)
}

// Remove deletes the key.
func (v *Value[T]) Remove(ctx context.Context) error {
	return v.store.remove(ctx, v.key)
}

// Take returns the value and removes it under the key's lock.
func (v *Value[T]) Take(ctx context.Context) (T, bool, error) {
	unlock := v.store.lock(v.key)
	defer unlock()

	value, ok, err := v.Get(ctx)
	if err != nil || !ok {
		return value, ok, err
	}

	return value, true, v.Remove(ctx)
}
