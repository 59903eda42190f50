package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/events"
	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
	"github.com/anthony-garcia-santos/techstorage/internal/util/idgen"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// DefaultDeliveryWindow is how long after placement delivery is promised.
const DefaultDeliveryWindow = 5 * 24 * time.Hour

type Options struct {
	DeliveryWindow time.Duration
	// Strict rejects status changes outside the fulfilment workflow.
	Strict bool
}

type CreateRequest struct {
	UserID          string
	Items           []order.Item
	Total           decimal.Decimal
	ShippingAddress order.Address
}

// Service is the order ledger. Orders are kept in creation order and the
// whole ledger is saved after every change.
type Service struct {
	mu        sync.Mutex
	repo      OrderRepository
	ids       idgen.Generator
	publisher events.Publisher
	opts      Options
	orders    []order.Order

	now            func() time.Time
	trackingNumber func() string
}

func NewService(ctx context.Context, repo OrderRepository, ids idgen.Generator, publisher events.Publisher, opts Options) (*Service, error) {
	orders, err := repo.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}
	if opts.DeliveryWindow <= 0 {
		opts.DeliveryWindow = DefaultDeliveryWindow
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		repo:           repo,
		ids:            ids,
		publisher:      publisher,
		opts:           opts,
		orders:         orders,
		now:            func() time.Time { return time.Now().UTC() },
		trackingNumber: newTrackingNumber,
	}, nil
}

// newTrackingNumber is a display-only carrier reference, BR + 10 digits.
func newTrackingNumber() string {
	return fmt.Sprintf("BR%010d", rand.Int64N(10_000_000_000))
}

func (s *Service) commit(ctx context.Context, next []order.Order) error {
	if err := s.repo.SaveOrders(ctx, next); err != nil {
		return err
	}
	s.orders = next
	return nil
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.orders, func(o order.Order) bool { return o.ID == id })
}

func (s *Service) publish(ctx context.Context, kind string, o order.Order) {
	ev := events.OrderEvent{
		EventID:   uuid.New().String(),
		Type:      kind,
		OrderID:   o.ID,
		UserID:    o.UserID,
		Status:    string(o.Status),
		Total:     o.Total,
		Timestamp: s.now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, ev); err != nil {
		logger.Log.Error("failed to publish order event",
			zap.String("order_id", o.ID),
			zap.String("type", kind),
			zap.Error(err))
	}
}

// Create places a pending order from a cart snapshot. Items and total are
// taken as given; nothing is checked against the catalog.
func (s *Service) Create(ctx context.Context, req CreateRequest) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	o := order.Order{
		ID:                s.ids.NewID(),
		UserID:            req.UserID,
		Items:             slices.Clone(req.Items),
		Total:             req.Total,
		Status:            order.StatusPending,
		ShippingAddress:   req.ShippingAddress,
		CreatedAt:         createdAt,
		EstimatedDelivery: createdAt.Add(s.opts.DeliveryWindow),
		TrackingNumber:    s.trackingNumber(),
		TrackingEvents:    TrackingHistory(order.StatusPending, createdAt),
	}
	if o.Items == nil {
		o.Items = []order.Item{}
	}

	next := append(slices.Clip(s.orders), o)
	if err := s.commit(ctx, next); err != nil {
		return order.Order{}, err
	}

	logger.Log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", o.UserID),
		zap.String("total", o.Total.StringFixed(2)))
	s.publish(ctx, events.TypeOrderCreated, o)
	return o.Clone(), nil
}

// SetStatus moves the order to status and rebuilds its tracking history from
// scratch, so repeating a call leaves the order unchanged.
func (s *Service) SetStatus(ctx context.Context, id string, status order.OrderStatus) (order.Order, error) {
	if !status.Valid() {
		return order.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return order.Order{}, ErrOrderNotFound
	}
	cur := s.orders[i]
	if s.opts.Strict && !order.CanTransition(cur.Status, status) {
		return order.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, status)
	}
	if cur.Status == order.StatusCancelled && status == order.StatusCancelled {
		return cur.Clone(), nil
	}

	updated := cur.Clone()
	updated.Status = status
	if status == order.StatusCancelled {
		updated.TrackingEvents = cancelledHistory(cur.Status, cur.CreatedAt, s.now())
	} else {
		updated.TrackingEvents = TrackingHistory(status, cur.CreatedAt)
	}

	next := slices.Clone(s.orders)
	next[i] = updated
	if err := s.commit(ctx, next); err != nil {
		return order.Order{}, err
	}

	logger.Log.Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", string(cur.Status)),
		zap.String("to", string(status)))
	s.publish(ctx, events.TypeOrderStatusChanged, updated)
	return updated.Clone(), nil
}

func (s *Service) Get(ctx context.Context, id string) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return order.Order{}, ErrOrderNotFound
	}
	return s.orders[i].Clone(), nil
}

// ListByUser returns the user's orders, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) []order.Order {
	return s.newestFirst(func(o order.Order) bool { return o.UserID == userID })
}

// List returns every order, newest first.
func (s *Service) List(ctx context.Context) []order.Order {
	return s.newestFirst(func(order.Order) bool { return true })
}

func (s *Service) newestFirst(keep func(order.Order) bool) []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, 0)
	for i := len(s.orders) - 1; i >= 0; i-- {
		if keep(s.orders[i]) {
			out = append(out, s.orders[i].Clone())
		}
	}
	return out
}
