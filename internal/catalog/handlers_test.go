package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthony-garcia-santos/techstorage/internal/storage/memory"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
	"github.com/anthony-garcia-santos/techstorage/internal/util/idgen"
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	svc, err := NewService(context.Background(), memory.NewStorage(), idgen.NewSequence("p"))
	require.NoError(t, err)
	require.NoError(t, svc.Seed(context.Background(), DefaultProducts()))

	h := NewHandler(svc)
	r := chi.NewRouter()
	r.Mount("/products", h.Routes())
	r.Mount("/admin/products", h.AdminRoutes())
	r.Get("/categories/{slug}/products", h.ListByCategory)
	return r, svc
}

func TestListProductsHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name  string
		query string
		code  int
		count int
	}{
		{"all", "", http.StatusOK, 4},
		{"search", "?q=pro", http.StatusOK, 3},
		{"price range", "?min=500&max=1000", http.StatusOK, 2},
		{"bad min", "?min=abc", http.StatusBadRequest, 0},
		{"bad max", "?max=abc", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil))
			require.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				return
			}
			var got []product.Product
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Len(t, got, tt.count)
		})
	}
}

func TestAdminProductHandlers(t *testing.T) {
	r, svc := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/products",
		strings.NewReader(`{"name":"Watch","price":"399.90","category":"wearables","inStock":true}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created product.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "p1", created.ID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/admin/products/p1", strings.NewReader(`{"inStock":false}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	got, err := svc.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, got.InStock)
	assert.Equal(t, "Watch", got.Name)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/wearables/products", nil))
	var inCategory []product.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&inCategory))
	assert.Len(t, inCategory, 1)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/products/p1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/products/p1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/admin/products/p1", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
