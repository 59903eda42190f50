package review

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthony-garcia-santos/techstorage/internal/middleware"
	"github.com/anthony-garcia-santos/techstorage/internal/storage/memory"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
	"github.com/anthony-garcia-santos/techstorage/internal/types/user"
	"github.com/anthony-garcia-santos/techstorage/internal/util/idgen"
)

func newTestService() *Service {
	svc := NewService(memory.NewStorage(), idgen.NewSequence("r"))
	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}
	return svc
}

func TestAddNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Add(ctx, Review{ProductID: "1", UserID: "ana", Rating: 5, Comment: "  great  "})
	require.NoError(t, err)
	_, err = svc.Add(ctx, Review{ProductID: "1", UserID: "bia", Rating: 3})
	require.NoError(t, err)
	_, err = svc.Add(ctx, Review{ProductID: "2", UserID: "ana", Rating: 1})
	require.NoError(t, err)

	reviews, err := svc.List(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r2", reviews[0].ID)
	assert.Equal(t, "r1", reviews[1].ID)
	assert.Equal(t, "great", reviews[1].Comment)
	assert.True(t, reviews[0].CreatedAt.After(reviews[1].CreatedAt))
}

func TestAddRejectsRatingOutOfRange(t *testing.T) {
	svc := newTestService()
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Add(context.Background(), Review{ProductID: "1", Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
	reviews, err := svc.List(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	for _, rating := range []int{5, 4, 4, 1} {
		_, err := svc.Add(ctx, Review{ProductID: "1", Rating: rating})
		require.NoError(t, err)
	}

	sum, err := svc.Summary(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Count)
	assert.InDelta(t, 3.5, sum.Average, 1e-9)
	assert.Equal(t, [5]int{1, 0, 0, 2, 1}, sum.Distribution)

	empty, err := svc.Summary(ctx, "none")
	require.NoError(t, err)
	assert.Equal(t, Summary{}, empty)
}

type stubCatalog map[string]product.Product

func (s stubCatalog) Get(ctx context.Context, id string) (product.Product, error) {
	p, ok := s[id]
	if !ok {
		return product.Product{}, errors.New("product not found")
	}
	return p, nil
}

func TestReviewHandlers(t *testing.T) {
	h := NewHandler(newTestService(), stubCatalog{"1": {ID: "1", Name: "Phone"}})
	r := chi.NewRouter()
	r.Get("/products/{id}/reviews", h.ListReviews)
	r.With(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.ContextWithUser(r.Context(), user.User{ID: "ana@shop.test", Name: "ana"})))
		})
	}).Post("/products/{id}/reviews", h.CreateReview)

	post := func(body string) int {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products/1/reviews", strings.NewReader(body)))
		return rec.Code
	}
	assert.Equal(t, http.StatusCreated, post(`{"rating":4,"comment":"solid"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"rating":9}`))
	assert.Equal(t, http.StatusBadRequest, post(`not json`))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products/does-not-exist/reviews", strings.NewReader(`{"rating":5}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	orphans, err := h.svc.List(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, orphans)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/1/reviews", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got listResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "ana", got.Reviews[0].UserName)
	assert.Equal(t, 1, got.Summary.Count)
}
