// Package blob persists each key as one object in a gocloud.dev bucket
// (file:// directories locally, mem:// in tests).
package blob

import (
	"context"

	"agrox/internal/domain/repository"
	"agrox/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// URLs
	_ "gocloud.dev/blob/memblob"  // mem:// URLs
	"gocloud.dev/gcerrors"
)

const contentType = "application/json"

// Store adapts a *blob.Bucket to repository.KeyValueStore.
type Store struct {
	bucket *blob.Bucket
}

// Open opens the bucket behind url, e.g. "file:///var/lib/agrox?create_dir=true".
func Open(ctx context.Context, url string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", url)
	}

	return &Store{bucket: bucket}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: contentType})

	return errors.WithStack(err)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.WithStack(err)
}

// Ping checks the bucket is reachable.
func (s *Store) Ping(ctx context.Context) error {
	accessible, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !accessible {
		return errors.New("bucket is not accessible")
	}

	return nil
}

func (s *Store) Close() error {
	return s.bucket.Close()
}
