package favorite

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	"github.com/anthony-garcia-santos/techstorage/internal/middleware"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
)

type ProductLookup interface {
	Get(ctx context.Context, id string) (product.Product, error)
}

type Handler struct {
	svc      *Service
	products ProductLookup
}

func NewHandler(svc *Service, products ProductLookup) *Handler {
	return &Handler{svc: svc, products: products}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListFavorites)
	r.Put("/{productID}", h.AddFavorite)
	r.Delete("/{productID}", h.RemoveFavorite)
	return r
}

// ListFavorites returns the favorite products. Ids of products that have
// since left the catalog are skipped.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFromContext(r.Context())
	ids, err := h.svc.List(r.Context(), u.ID)
	if err != nil {
		logger.Log.Error("list favorites", zap.String("user_id", u.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	products := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		p, err := h.products.Get(r.Context(), id)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFromContext(r.Context())
	productID := chi.URLParam(r, "productID")
	if _, err := h.products.Get(r.Context(), productID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := h.svc.Add(r.Context(), u.ID, productID); err != nil {
		logger.Log.Error("add favorite", zap.String("user_id", u.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFromContext(r.Context())
	if err := h.svc.Remove(r.Context(), u.ID, chi.URLParam(r, "productID")); err != nil {
		logger.Log.Error("remove favorite", zap.String("user_id", u.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
