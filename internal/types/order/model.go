package order

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Progression lists the fulfilment stages in order. Cancelled is not a stage.
var Progression = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

func (s OrderStatus) Valid() bool {
	return s == StatusCancelled || s.Stage() >= 0
}

// Stage is the index of s in Progression, or -1.
func (s OrderStatus) Stage() int {
	for i, st := range Progression {
		if st == s {
			return i
		}
	}
	return -1
}

var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether from -> to is allowed by the fulfilment
// workflow. Staying in the same status is always allowed.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Item is a copy of the product taken when the order was placed.
type Item struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Street, a.City, strings.TrimSpace(a.State + " " + a.ZipCode)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type TrackingEvent struct {
	Status      OrderStatus `json:"status"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	Location    string      `json:"location,omitempty"`
}

type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Items             []Item          `json:"items"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	ShippingAddress   Address         `json:"shippingAddress"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	TrackingEvents    []TrackingEvent `json:"trackingEvents"`
}

// Clone returns a deep copy so callers never alias ledger state.
func (o Order) Clone() Order {
	o.Items = slices.Clone(o.Items)
	o.TrackingEvents = slices.Clone(o.TrackingEvents)
	return o
}
