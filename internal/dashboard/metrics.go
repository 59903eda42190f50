package dashboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
)

const (
	trendDays   = 7
	topProducts = 5
)

type DayStat struct {
	Date    string          `json:"date"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ProductStat struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type Metrics struct {
	Revenue       decimal.Decimal           `json:"revenue"`
	OrderCount    int                       `json:"orderCount"`
	AverageOrder  decimal.Decimal           `json:"averageOrder"`
	ByStatus      map[order.OrderStatus]int `json:"byStatus"`
	LastDays      []DayStat                 `json:"lastDays"`
	TopProducts   []ProductStat             `json:"topProducts"`
	PendingOrders int                       `json:"pendingOrders"`
}

// Compute aggregates orders as of now. Cancelled orders are counted by status
// but bring no revenue.
func Compute(orders []order.Order, now time.Time) Metrics {
	m := Metrics{
		Revenue:      decimal.Zero,
		AverageOrder: decimal.Zero,
		ByStatus:     make(map[order.OrderStatus]int),
		LastDays:     make([]DayStat, trendDays),
		TopProducts:  []ProductStat{},
	}

	today := now.UTC().Truncate(24 * time.Hour)
	for i := range m.LastDays {
		day := today.AddDate(0, 0, i-(trendDays-1))
		m.LastDays[i] = DayStat{Date: day.Format(time.DateOnly), Revenue: decimal.Zero}
	}

	byProduct := make(map[string]*ProductStat)
	paid := 0
	for _, o := range orders {
		m.OrderCount++
		m.ByStatus[o.Status]++
		if o.Status == order.StatusPending || o.Status == order.StatusProcessing {
			m.PendingOrders++
		}
		if o.Status == order.StatusCancelled {
			continue
		}

		paid++
		m.Revenue = m.Revenue.Add(o.Total)

		day := o.CreatedAt.UTC().Truncate(24 * time.Hour)
		if idx := int(day.Sub(today)/(24*time.Hour)) + trendDays - 1; idx >= 0 && idx < trendDays {
			m.LastDays[idx].Orders++
			m.LastDays[idx].Revenue = m.LastDays[idx].Revenue.Add(o.Total)
		}

		for _, it := range o.Items {
			ps, ok := byProduct[it.ProductID]
			if !ok {
				ps = &ProductStat{ProductID: it.ProductID, Name: it.Name, Revenue: decimal.Zero}
				byProduct[it.ProductID] = ps
			}
			ps.Quantity += it.Quantity
			ps.Revenue = ps.Revenue.Add(it.Subtotal())
		}
	}

	if paid > 0 {
		m.AverageOrder = m.Revenue.Div(decimal.NewFromInt(int64(paid))).Round(2)
	}

	for _, ps := range byProduct {
		m.TopProducts = append(m.TopProducts, *ps)
	}
	slices.SortFunc(m.TopProducts, func(a, b ProductStat) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	if len(m.TopProducts) > topProducts {
		m.TopProducts = m.TopProducts[:topProducts]
	}
	return m
}
