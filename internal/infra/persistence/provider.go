// Package persistence selects the key-value backend behind the domain store.
package persistence

import (
	"context"
	"log/slog"

	"agrox/config"
	"agrox/internal/domain/constants"
	"agrox/internal/domain/lifecycle"
	"agrox/internal/domain/repository"
	"agrox/internal/errors"
	"agrox/internal/infra/persistence/blob"
	"agrox/internal/infra/persistence/memory"
	"agrox/internal/infra/persistence/postgres"
	"agrox/internal/infra/persistence/redis"
	"agrox/internal/infra/persistence/s3"
	"agrox/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Backend is a KeyValueStore with a connection lifecycle.
type Backend interface {
	repository.KeyValueStore

	Ping(ctx context.Context) error
	Close() error
}

// StoreParams holds dependencies for the KeyValueStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the backend named by storage.driver and registers
// its ping and close hooks.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	backend, err := openBackend(ctx, params)
	if err != nil {
		return nil, err
	}

	logger.Info("Key-value store selected", slog.String("driver", cfg.Driver))

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrapf(backend.Ping(ctx), "ping %s store", cfg.Driver)
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing key-value store", slog.String("driver", cfg.Driver))

			return backend.Close()
		},
	})

	return backend, nil
}

func openBackend(ctx context.Context, params StoreParams) (Backend, error) {
	cfg := params.Config.Storage

	switch cfg.Driver {
	case "", constants.StorageDriverMemory:
		return memory.New(), nil

	case constants.StorageDriverBlob:
		if cfg.BlobURL == "" {
			return nil, errors.New("storage.blobUrl is required for the blob driver")
		}

		return blob.Open(ctx, cfg.BlobURL)

	case constants.StorageDriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("storage.sqlitePath is required for the sqlite driver")
		}

		return sqlite.Open(ctx, cfg.SQLitePath)

	case constants.StorageDriverPostgres:
		db, err := postgres.Connect(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewKVStore(ctx, db, cfg.KeyPrefix)

	case constants.StorageDriverRedis:
		if cfg.Redis == nil || cfg.Redis.Host == "" {
			return nil, errors.New("storage.redis.host is required for the redis driver")
		}

		return redis.New(cfg.Redis, cfg.KeyPrefix), nil

	case constants.StorageDriverS3:
		return s3.New(ctx, cfg.S3, cfg.KeyPrefix)

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// Module provides the key-value store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
)
