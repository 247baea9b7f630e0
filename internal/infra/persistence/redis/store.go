// Package redis persists each key as a redis string, namespaced by a prefix.
package redis

import (
	"context"

	"agrox/config"
	"agrox/internal/domain/repository"
	"agrox/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// Store is a KeyValueStore over a redis client.
type Store struct {
	client goredis.UniversalClient
	prefix string
}

// New builds a client from cfg. The connection is verified by Ping.
func New(cfg *config.RedisConfig, prefix string) *Store {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return NewWithClient(client, prefix)
}

// NewWithClient wraps an existing client.
func NewWithClient(client goredis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(key string) string {
	return s.prefix + key
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return errors.WithStack(s.client.Set(ctx, s.key(key), value, 0).Err())
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return errors.WithStack(s.client.Del(ctx, s.key(key)).Err())
}

func (s *Store) Ping(ctx context.Context) error {
	return errors.WithStack(s.client.Ping(ctx).Err())
}

func (s *Store) Close() error {
	return s.client.Close()
}
