package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"agrox/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Memory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Ping(ctx))

	_, err = s.Get(ctx, "requests")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "requests", []byte(`[{"id":"1"}]`)))
	got, err := s.Get(ctx, "requests")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Remove(ctx, "requests"))
	require.NoError(t, s.Remove(ctx, "requests"))
}

func TestStore_FileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	url := "file://" + filepath.ToSlash(dir)

	s, err := Open(ctx, url)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "notifications_ann@farm.test", []byte(`[]`)))
	require.NoError(t, s.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	reopened, err := Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "notifications_ann@farm.test")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
