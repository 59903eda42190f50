package order

import (
	"context"

	"github.com/anthony-garcia-santos/techstorage/internal/storage"
	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
)

const ordersKey = "orders"

// OrderRepository persists the whole ledger at once, oldest order first.
type OrderRepository interface {
	LoadOrders(ctx context.Context) ([]order.Order, error)
	SaveOrders(ctx context.Context, orders []order.Order) error
}

type kvRepository struct {
	kv storage.KV
}

func NewKVRepository(kv storage.KV) OrderRepository {
	return &kvRepository{kv: kv}
}

func (r *kvRepository) LoadOrders(ctx context.Context) ([]order.Order, error) {
	orders, _, err := storage.LoadCollection[order.Order](ctx, r.kv, ordersKey)
	return orders, err
}

func (r *kvRepository) SaveOrders(ctx context.Context, orders []order.Order) error {
	return storage.SaveCollection(ctx, r.kv, ordersKey, orders)
}
