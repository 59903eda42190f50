package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes are the public read-only catalog routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListProducts)
	r.Get("/featured", h.ListFeatured)
	r.Get("/{id}", h.GetProduct)
	return r
}

// AdminRoutes mutate the catalog and must sit behind the admin gate.
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateProduct)
	r.Patch("/{id}", h.UpdateProduct)
	r.Delete("/{id}", h.DeleteProduct)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minPrice, err := parsePrice(q.Get("min"))
	if err != nil {
		http.Error(w, "invalid min price", http.StatusBadRequest)
		return
	}
	maxPrice, err := parsePrice(q.Get("max"))
	if err != nil {
		http.Error(w, "invalid max price", http.StatusBadRequest)
		return
	}
	products := h.svc.Filter(r.Context(), product.Filter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     product.SortKey(q.Get("sort")),
	})
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Featured(r.Context()))
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ByCategory(r.Context(), chi.URLParam(r, "slug")))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ErrProductNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p product.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.svc.Add(r.Context(), p)
	if err != nil {
		logger.Log.Error("add product", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch product.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	switch {
	case errors.Is(err, ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		logger.Log.Error("update product", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, updated)
	}
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Remove(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		logger.Log.Error("remove product", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
