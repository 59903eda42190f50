package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anthony-garcia-santos/techstorage/internal/storage"
)

func TestStorageGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, s.Set(ctx, "k", []byte("v")))
	v, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	assert.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorageCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	in := []byte("abc")
	assert.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	v, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(v))
}
