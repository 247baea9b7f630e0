// Package collection reads and writes JSON-encoded domain collections through
// a KeyValueStore. Absent or malformed data loads as an empty collection;
// only an unavailable backend is an error.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/errors"
	"agrox/internal/infra/metrics"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// LoadWarning reports data dropped while loading a key.
type LoadWarning struct {
	Key     string
	Dropped int
	Cause   error
}

func (w *LoadWarning) Error() string {
	return fmt.Sprintf("collection %q: dropped %d record(s): %v", w.Key, w.Dropped, w.Cause)
}

func (w *LoadWarning) Unwrap() error {
	return w.Cause
}

// ErrNotArray is the warning cause when a key holds JSON that is not an array.
var ErrNotArray = errors.New("stored value is not a JSON array")

// Params defines the dependencies of Store
type Params struct {
	fx.In

	KV      repository.KeyValueStore
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Store is the shared state of every collection: the backend, the shape
// validator and one mutex per key in use.
type Store struct {
	kv       repository.KeyValueStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate

	mu    sync.Mutex
	locks map[string]*keyLock
}

// keyLock is dropped from Store.locks once no caller holds or awaits it.
type keyLock struct {
	sync.Mutex
	refs int
}

// NewStore creates the Store
func NewStore(params Params) *Store {
	return &Store{
		kv:       params.KV,
		logger:   params.Logger,
		metrics:  params.Metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		locks:    make(map[string]*keyLock),
	}
}

// lock acquires the mutex of key and returns its release.
func (s *Store) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

// read returns the raw value, nil when absent.
func (s *Store) read(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		s.metrics.StorageError("get")

		return nil, domainerrors.NewStorageExecuteError(err, "get", key)
	}

	return raw, nil
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.metrics.StorageError("set")

		return domainerrors.NewStorageExecuteError(err, "set", key)
	}

	return nil
}

func (s *Store) remove(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, key); err != nil {
		s.metrics.StorageError("remove")

		return domainerrors.NewStorageExecuteError(err, "remove", key)
	}

	return nil
}

// recovered logs and counts a malformed-data recovery.
func (s *Store) recovered(ctx context.Context, warning *LoadWarning) {
	s.logger.WarnContext(ctx, "Recovered malformed collection",
		slog.String("key", warning.Key),
		slog.Int("dropped", warning.Dropped),
		slog.Any("error", warning.Cause),
	)
	s.metrics.StoreMalformed(warning.Key)
}
