package favorite

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthony-garcia-santos/techstorage/internal/middleware"
	"github.com/anthony-garcia-santos/techstorage/internal/storage"
	"github.com/anthony-garcia-santos/techstorage/internal/storage/memory"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
	"github.com/anthony-garcia-santos/techstorage/internal/types/user"
)

type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("unavailable")
}
func (failingKV) Set(ctx context.Context, key string, value []byte) error { return nil }
func (failingKV) Delete(ctx context.Context, key string) error            { return nil }

var _ storage.KV = failingKV{}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStorage())

	require.NoError(t, svc.Add(ctx, "ana", "1"))
	require.NoError(t, svc.Add(ctx, "ana", "2"))
	require.NoError(t, svc.Add(ctx, "ana", "1"))

	ids, err := svc.List(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestFavoritesArePerUser(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStorage()
	svc := NewService(kv)

	require.NoError(t, svc.Add(ctx, "ana", "1"))

	ok, err := svc.IsFavorite(ctx, "ana", "1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.IsFavorite(ctx, "bia", "1")
	require.NoError(t, err)
	assert.False(t, ok)

	raw, err := kv.Get(ctx, "favorites:ana")
	require.NoError(t, err)
	assert.JSONEq(t, `["1"]`, string(raw))

	ids, err := svc.List(ctx, "bia")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStorage())
	require.NoError(t, svc.Add(ctx, "ana", "1"))
	require.NoError(t, svc.Add(ctx, "ana", "2"))

	require.NoError(t, svc.Remove(ctx, "ana", "1"))
	require.NoError(t, svc.Remove(ctx, "ana", "missing"))

	ids, _ := svc.List(ctx, "ana")
	assert.Equal(t, []string{"2"}, ids)
}

func TestLoadErrorIsReturned(t *testing.T) {
	svc := NewService(failingKV{})
	assert.Error(t, svc.Add(context.Background(), "ana", "1"))
	_, err := svc.List(context.Background(), "ana")
	assert.Error(t, err)
}

type stubCatalog map[string]product.Product

func (s stubCatalog) Get(ctx context.Context, id string) (product.Product, error) {
	p, ok := s[id]
	if !ok {
		return product.Product{}, errors.New("product not found")
	}
	return p, nil
}

func TestFavoriteHandlers(t *testing.T) {
	svc := NewService(memory.NewStorage())
	h := NewHandler(svc, stubCatalog{"1": {ID: "1", Name: "Phone"}, "2": {ID: "2", Name: "Tablet"}})

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.ContextWithUser(r.Context(), user.User{ID: "ana"})))
		})
	})
	r.Mount("/favorites", h.Routes())

	do := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	assert.Equal(t, http.StatusNoContent, do(http.MethodPut, "/favorites/1").Code)
	assert.Equal(t, http.StatusNoContent, do(http.MethodPut, "/favorites/2").Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodPut, "/favorites/9").Code)
	assert.Equal(t, http.StatusNoContent, do(http.MethodDelete, "/favorites/2").Code)

	rec := do(http.MethodGet, "/favorites")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []product.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Phone", got[0].Name)
}
