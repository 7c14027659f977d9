// Package storagetest содержит общий набор проверок для драйверов хранилища.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store interface {
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
}

// Run прогоняет проверки на свежем хранилище, которое возвращает newStore.
func Run[S store](t *testing.T, newStore func(t *testing.T) S) {
	t.Helper()

	t.Run("absent keys", func(t *testing.T) {
		s := newStore(t)

		values, err := s.GetMany(context.Background(), "a", "b")
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("set and get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "a", "1"))
		require.NoError(t, s.Set(ctx, "empty", ""))
		require.NoError(t, s.Set(ctx, "a", "2"))

		values, err := s.GetMany(ctx, "a", "empty", "missing")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "2", "empty": ""}, values)
	})

	t.Run("set many", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "keep", "x"))
		require.NoError(t, s.SetMany(ctx, map[string]string{
			"userName": "Radha",
			"userAge":  "21",
			"keep":     "y",
		}))

		values, err := s.GetMany(ctx, "userName", "userAge", "keep")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"userName": "Radha", "userAge": "21", "keep": "y"}, values)
	})

	t.Run("remove", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SetMany(ctx, map[string]string{"a": "1", "b": "2", "c": "3"}))
		require.NoError(t, s.Remove(ctx, "a", "b", "never-set"))
		require.NoError(t, s.Remove(ctx))

		values, err := s.GetMany(ctx, "a", "b", "c")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"c": "3"}, values)
	})
}
