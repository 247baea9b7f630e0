package collection

import (
	"context"
	"encoding/json"
	"reflect"

	"agrox/internal/errors"
)

// Result is a loaded collection. Warning is set when records were dropped.
type Result[T any] struct {
	Items   []T
	Warning *LoadWarning
}

// Collection is a typed view over JSON arrays stored under string keys.
// Struct elements are shape-checked with their `validate` tags on load.
type Collection[T any] struct {
	store *Store
	shape bool
}

// New returns a Collection of T backed by store.
func New[T any](store *Store) *Collection[T] {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return &Collection[T]{
		store: store,
		shape: t.Kind() == reflect.Struct,
	}
}

// Load parses the array stored under key. An absent key is an empty result.
func (c *Collection[T]) Load(ctx context.Context, key string) (Result[T], error) {
	raw, err := c.store.read(ctx, key)
	if err != nil || raw == nil {
		return Result[T]{}, err
	}

	result := c.decode(key, raw)
	if result.Warning != nil {
		c.store.recovered(ctx, result.Warning)
	}

	return result, nil
}

// LoadScoped is Load filtered by keep.
func (c *Collection[T]) LoadScoped(ctx context.Context, key string, keep func(T) bool) (Result[T], error) {
	result, err := c.Load(ctx, key)
	if err != nil {
		return result, err
	}

	scoped := make([]T, 0, len(result.Items))
	for _, item := range result.Items {
		if keep(item) {
			scoped = append(scoped, item)
		}
	}
	result.Items = scoped

	return result, nil
}

// Save replaces the whole collection stored under key.
func (c *Collection[T]) Save(ctx context.Context, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	return c.store.write(ctx, key, items)
}

// With runs a read-modify-write of key under the key's lock. fn receives the
// current items; its result is saved unless it returns an error, which is
// passed through.
func (c *Collection[T]) With(ctx context.Context, key string, fn func([]T) ([]T, error)) error {
	unlock := c.store.lock(key)
	defer unlock()

	result, err := c.Load(ctx, key)
	if err != nil {
		return err
	}

	items, err := fn(result.Items)
	if err != nil {
		return err
	}

	return c.Save(ctx, key, items)
}

func (c *Collection[T]) decode(key string, raw []byte) Result[T] {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		cause := ErrNotArray
		if !json.Valid(raw) {
			cause = errors.Wrap(err, "invalid JSON")
		}

		return Result[T]{Items: []T{}, Warning: &LoadWarning{Key: key, Cause: cause}}
	}

	items := make([]T, 0, len(records))
	var dropped int
	var firstErr error
	for _, record := range records {
		item, err := c.decodeRecord(record)
		if err != nil {
			dropped++
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		items = append(items, item)
	}

	result := Result[T]{Items: items}
	if dropped > 0 {
		result.Warning = &LoadWarning{Key: key, Dropped: dropped, Cause: firstErr}
	}

	return result
}

func (c *Collection[T]) decodeRecord(record json.RawMessage) (T, error) {
	var item T
	if err := json.Unmarshal(record, &item); err != nil {
		return item, errors.Wrap(err, "decode record")
	}
	if !c.shape {
		return item, nil
	}

	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return item, errors.New("null record")
	}
	if err := c.store.validate.Struct(item); err != nil {
		return item, errors.Wrap(err, "invalid record shape")
	}

	return item, nil
}
