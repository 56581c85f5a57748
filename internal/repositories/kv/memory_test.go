package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Contract(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Set(ctx, "notes", []byte("[]")))
	require.NoError(t, r.SetMany(ctx, map[string][]byte{"userSettings": []byte("{}")}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"notes": []byte("[]"), "userSettings": []byte("{}")}, m)

	require.NoError(t, r.Delete(ctx, "notes"))
	require.NoError(t, r.Delete(ctx, "notes"))
	v, err = r.Get(ctx, "notes")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMemoryRepository_ValuesAreCopied(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(out))

	out[0] = 'Y'
	again, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}

func TestMemoryRepository_SatisfiesInterface(t *testing.T) {
	var _ Repository = NewMemoryRepository()
	var _ Repository = (*SQLiteRepository)(nil)
}
