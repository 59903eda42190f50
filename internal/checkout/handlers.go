package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/cart"
	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	"github.com/anthony-garcia-santos/techstorage/internal/middleware"
	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
)

var ErrUnknownProduct = errors.New("unknown product")

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

type lineReq struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

type checkoutReq struct {
	Items           []lineReq     `json:"items"`
	ShippingAddress order.Address `json:"shippingAddress"`
	Card            Card          `json:"card"`
}

// buildCart prices the submitted lines from the catalog.
func (h *Handler) buildCart(ctx context.Context, lines []lineReq) (*cart.Cart, error) {
	c := cart.New()
	for _, l := range lines {
		p, err := h.products.Get(ctx, l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, l.ProductID)
		}
		c.Add(p, l.Quantity)
	}
	return c, nil
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFromContext(r.Context())

	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.buildCart(r.Context(), req.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.Checkout(r.Context(), Request{
		UserID:          u.ID,
		Cart:            c,
		ShippingAddress: req.ShippingAddress,
		Card:            req.Card,
	})
	switch {
	case errors.Is(err, ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidCard):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case err != nil:
		logger.Log.Error("checkout", zap.String("user_id", u.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(o)
	}
}
