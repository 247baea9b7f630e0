// Package store implements the domain repositories on top of JSON collections.
package store

import (
	"context"

	"agrox/internal/errors"
	"agrox/internal/infra/persistence/collection"
)

// errUnchanged aborts a With callback that has nothing to write.
var errUnchanged = errors.New("collection unchanged")

// mutate runs fn under the key's lock, treating errUnchanged as success.
func mutate[T any](ctx context.Context, c *collection.Collection[T], key string, fn func([]T) ([]T, error)) error {
	err := c.With(ctx, key, fn)
	if errors.Is(err, errUnchanged) {
		return nil
	}

	return err
}

// keyed is a collection of records identified by a string id.
type keyed[T any] struct {
	items    *collection.Collection[T]
	key      string
	id       func(T) string
	notFound error
}

func newKeyed[T any](store *collection.Store, key string, id func(T) string, notFound error) keyed[T] {
	return keyed[T]{
		items:    collection.New[T](store),
		key:      key,
		id:       id,
		notFound: notFound,
	}
}

func (k keyed[T]) list(ctx context.Context) ([]T, error) {
	result, err := k.items.Load(ctx, k.key)

	return result.Items, err
}

func (k keyed[T]) filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	result, err := k.items.LoadScoped(ctx, k.key, keep)

	return result.Items, err
}

func (k keyed[T]) find(ctx context.Context, id string) (T, error) {
	var zero T

	items, err := k.list(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if k.id(item) == id {
			return item, nil
		}
	}

	return zero, k.notFound
}

// save replaces the record with the same id in place, or appends it.
func (k keyed[T]) save(ctx context.Context, record T) error {
	return mutate(ctx, k.items, k.key, func(items []T) ([]T, error) {
		for i, item := range items {
			if k.id(item) == k.id(record) {
				items[i] = record

				return items, nil
			}
		}

		return append(items, record), nil
	})
}

func (k keyed[T]) delete(ctx context.Context, id string) error {
	return mutate(ctx, k.items, k.key, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if k.id(item) != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(items) {
			return nil, k.notFound
		}

		return kept, nil
	})
}

// update applies fn to the record with id and saves the collection unless fn fails.
func (k keyed[T]) update(ctx context.Context, id string, fn func(T) error) (T, error) {
	var updated T
	err := mutate(ctx, k.items, k.key, func(items []T) ([]T, error) {
		for _, item := range items {
			if k.id(item) != id {
				continue
			}
			if err := fn(item); err != nil {
				return nil, err
			}
			updated = item

			return items, nil
		}

		return nil, k.notFound
	})

	return updated, err
}
