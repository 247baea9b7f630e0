package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"agrox/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Ping(ctx))

	_, err = s.Get(ctx, "users")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "users", []byte(`[{"email":"a@b.c"}]`)))
	require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))

	got, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Remove(ctx, "users"))
	_, err = s.Get(ctx, "users")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestStore_FilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "agrox.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "isLoggedIn", []byte(`true`)))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "isLoggedIn")
	require.NoError(t, err)
	assert.Equal(t, `true`, string(got))
}
