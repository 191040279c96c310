package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every backend must share.
func runContract(t *testing.T, newRepo func(t *testing.T) TxRepository) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "userName", []byte("Jane Doe")))

		v, err := r.Get(ctx, "userName")
		require.NoError(t, err)
		assert.Equal(t, []byte("Jane Doe"), v)
	})

	t.Run("missing key is nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "userEmail", []byte("old@x.com")))
		require.NoError(t, r.Set(ctx, "userEmail", []byte("new@x.com")))

		v, err := r.Get(ctx, "userEmail")
		require.NoError(t, err)
		assert.Equal(t, []byte("new@x.com"), v)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "userId", []byte("1")))
		require.NoError(t, r.Delete(ctx, "userId"))
		require.NoError(t, r.Delete(ctx, "userId"))

		v, err := r.Get(ctx, "userId")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("list and clear", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
		require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"a": {0xAA}, "b": {0xBB, 0xCC}}, m)

		require.NoError(t, r.Clear(ctx))
		m, err = r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("tx commits all writes", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "profilePhoto", []byte("data:")))

		err := r.InTx(ctx, func(ctx context.Context, tx Repository) error {
			if err := tx.Set(ctx, "userName", []byte("Jo Lee")); err != nil {
				return err
			}
			if err := tx.Set(ctx, "userEmail", []byte("jo@lee.com")); err != nil {
				return err
			}
			return tx.Delete(ctx, "profilePhoto")
		})
		require.NoError(t, err)

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{
			"userName":  []byte("Jo Lee"),
			"userEmail": []byte("jo@lee.com"),
		}, m)
	})

	t.Run("tx error discards writes", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "userName", []byte("Jane Doe")))

		boom := errors.New("boom")
		err := r.InTx(ctx, func(ctx context.Context, tx Repository) error {
			if err := tx.Set(ctx, "userName", []byte("Changed")); err != nil {
				return err
			}
			if err := tx.Set(ctx, "userId", []byte("7")); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"userName": []byte("Jane Doe")}, m)
	})
}
