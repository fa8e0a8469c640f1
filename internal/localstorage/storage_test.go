package localstorage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, TokenKey, "a.b.c"))
	v, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", v)

	require.NoError(t, s.Set(ctx, TokenKey, "d.e.f"))
	v, _ = s.Get(ctx, TokenKey)
	assert.Equal(t, "d.e.f", v)

	require.NoError(t, s.Remove(ctx, TokenKey))
	require.NoError(t, s.Remove(ctx, TokenKey))
	_, err = s.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestFile(t *testing.T) {
	exercise(t, NewFile(filepath.Join(t.TempDir(), "nested", "storage.json")))
}

func TestFileSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	ctx := context.Background()
	require.NoError(t, NewFile(path).Set(ctx, "k", "v"))

	v, err := NewFile(path).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestScopedIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	shared := NewMemory()
	a := Scoped(shared, "a")
	b := Scoped(shared, "b")

	exercise(t, a)

	require.NoError(t, a.Set(ctx, TokenKey, "token-a"))
	_, err := b.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)

	raw, err := shared.Get(ctx, "sessions/a/token")
	require.NoError(t, err)
	assert.Equal(t, "token-a", raw)
}
