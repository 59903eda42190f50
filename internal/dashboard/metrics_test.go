package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
)

var now = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func item(id string, price int64, qty int) order.Item {
	return order.Item{ProductID: id, Name: "product " + id, Price: decimal.NewFromInt(price), Quantity: qty}
}

func mkOrder(status order.OrderStatus, daysAgo int, items ...order.Item) order.Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return order.Order{
		Status:    status,
		CreatedAt: now.AddDate(0, 0, -daysAgo),
		Items:     items,
		Total:     total,
	}
}

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil, now)
	assert.True(t, m.Revenue.IsZero())
	assert.True(t, m.AverageOrder.IsZero())
	assert.Equal(t, 0, m.OrderCount)
	assert.Len(t, m.LastDays, 7)
	assert.Equal(t, "2025-06-10", m.LastDays[6].Date)
	assert.Equal(t, "2025-06-04", m.LastDays[0].Date)
	assert.Empty(t, m.TopProducts)
}

func TestComputeTotals(t *testing.T) {
	orders := []order.Order{
		mkOrder(order.StatusDelivered, 0, item("1", 100, 2)),
		mkOrder(order.StatusPending, 1, item("2", 50, 1)),
		mkOrder(order.StatusCancelled, 0, item("3", 1000, 1)),
		mkOrder(order.StatusShipped, 30, item("1", 100, 1)),
	}
	m := Compute(orders, now)

	assert.Equal(t, 4, m.OrderCount)
	assert.Equal(t, "350", m.Revenue.String())
	assert.Equal(t, "116.67", m.AverageOrder.String())
	assert.Equal(t, 1, m.ByStatus[order.StatusCancelled])
	assert.Equal(t, 1, m.ByStatus[order.StatusDelivered])
	assert.Equal(t, 1, m.PendingOrders)

	assert.Equal(t, 1, m.LastDays[6].Orders)
	assert.Equal(t, "200", m.LastDays[6].Revenue.String())
	assert.Equal(t, 1, m.LastDays[5].Orders)

	require.Len(t, m.TopProducts, 2)
	assert.Equal(t, "1", m.TopProducts[0].ProductID)
	assert.Equal(t, 3, m.TopProducts[0].Quantity)
	assert.Equal(t, "300", m.TopProducts[0].Revenue.String())
}

func TestComputeKeepsTopFive(t *testing.T) {
	var orders []order.Order
	for i := 1; i <= 7; i++ {
		orders = append(orders, mkOrder(order.StatusDelivered, 0, item(fmt.Sprint(i), int64(i*10), 1)))
	}
	m := Compute(orders, now)
	require.Len(t, m.TopProducts, 5)
	assert.Equal(t, "7", m.TopProducts[0].ProductID)
	assert.Equal(t, "3", m.TopProducts[4].ProductID)
}

type stubLister []order.Order

func (s stubLister) List(ctx context.Context) []order.Order { return s }

func TestGetMetricsHandler(t *testing.T) {
	h := NewHandler(stubLister{mkOrder(order.StatusDelivered, 0, item("1", 10, 1))})
	h.now = func() time.Time { return now }

	rec := httptest.NewRecorder()
	h.GetMetrics(rec, httptest.NewRequest(http.MethodGet, "/api/admin/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, float64(1), got["orderCount"])
	assert.Equal(t, "10", got["revenue"])
}
