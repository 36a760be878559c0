// Package storagetest holds the behavior every storage.Store must satisfy.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wonders/internal/storage"
)

// Run exercises a Store built by open. Each subtest gets a fresh Store.
func Run(t *testing.T, open func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := open(t)
		_, err := s.Get(ctx, "absent")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("put get overwrite", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Put(ctx, "slot", []byte(`{"version":1}`)))
		got, err := s.Get(ctx, "slot")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":1}`, string(got))

		require.NoError(t, s.Put(ctx, "slot", []byte(`{"version":2}`)))
		got, err = s.Get(ctx, "slot")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":2}`, string(got))
	})

	t.Run("delete", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Put(ctx, "slot", []byte(`{}`)))
		require.NoError(t, s.Delete(ctx, "slot"))
		_, err := s.Get(ctx, "slot")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NoError(t, s.Delete(ctx, "slot"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := open(t)
		rapid.Check(t, func(rt *rapid.T) {
			keys := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,8}`), 1, 5, rapid.ID[string]).Draw(rt, "keys")
			for i, k := range keys {
				require.NoError(rt, s.Put(ctx, k, []byte{'[', byte('0' + i), ']'}))
			}
			for i, k := range keys {
				got, err := s.Get(ctx, k)
				require.NoError(rt, err)
				assert.Equal(rt, []byte{'[', byte('0' + i), ']'}, got)
			}
			for _, k := range keys {
				require.NoError(rt, s.Delete(ctx, k))
			}
		})
	})
}
