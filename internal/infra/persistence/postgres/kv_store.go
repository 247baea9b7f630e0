// Package postgres contains the PostgreSQL key-value backend built on GORM.
package postgres

import (
	"context"
	"time"

	"agrox/internal/domain/repository"
	"agrox/internal/errors"
	"agrox/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore implements repository.KeyValueStore over the kv_entries table.
type KVStore struct {
	db     *gorm.DB
	prefix string
}

// NewKVStore migrates kv_entries and returns the store.
func NewKVStore(ctx context.Context, db *gorm.DB, prefix string) (*KVStore, error) {
	if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &KVStore{
		db:     db,
		prefix: prefix,
	}, nil
}

// Get retrieves the value stored under key.
func (repo *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entryM model.KVEntryModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", repo.prefix+key).
		Take(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find kv entry")
	}

	return entryM.Value, nil
}

// Set upserts the value stored under key.
func (repo *KVStore) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now()
	entryM := &model.KVEntryModel{
		Key:       repo.prefix + key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entryM).Error

	return errors.Wrap(err, "failed to upsert kv entry")
}

// Remove deletes key. Deleting a missing row is not an error.
func (repo *KVStore) Remove(ctx context.Context, key string) error {
	err := repo.db.WithContext(ctx).
		Where("key = ?", repo.prefix+key).
		Delete(&model.KVEntryModel{}).Error

	return errors.Wrap(err, "failed to delete kv entry")
}

// Ping checks the connection pool.
func (repo *KVStore) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}

// Close is a no-op: the pool is closed by the connection's lifecycle hook.
func (repo *KVStore) Close() error { return nil }
