package review

import (
	"context"
	"encoding/json"
	"errors"
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

type listResp struct {
	Summary Summary  `json:"summary"`
	Reviews []Review `json:"reviews"`
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	reviews, err := h.svc.List(r.Context(), productID)
	if err != nil {
		logger.Log.Error("list reviews", zap.String("product_id", productID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listResp{Summary: Summarize(reviews), Reviews: reviews})
}

type createReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFromContext(r.Context())
	productID := chi.URLParam(r, "id")
	if _, err := h.products.Get(r.Context(), productID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.Add(r.Context(), Review{
		ProductID: productID,
		UserID:    u.ID,
		UserName:  u.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	switch {
	case errors.Is(err, ErrInvalidRating):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		logger.Log.Error("add review", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}
