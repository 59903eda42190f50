package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
)

type OrderLister interface {
	List(ctx context.Context) []order.Order
}

type Handler struct {
	orders OrderLister
	now    func() time.Time
}

func NewHandler(orders OrderLister) *Handler {
	return &Handler{orders: orders, now: time.Now}
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	m := Compute(h.orders.List(r.Context()), h.now())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}
