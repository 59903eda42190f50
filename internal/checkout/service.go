package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/cart"
	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	orderSvc "github.com/anthony-garcia-santos/techstorage/internal/order"
	"github.com/anthony-garcia-santos/techstorage/internal/types/order"
	"github.com/anthony-garcia-santos/techstorage/internal/util/luna"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidCard = errors.New("invalid card number")
)

const DefaultPaymentDelay = 2 * time.Second

type Ledger interface {
	Create(ctx context.Context, req orderSvc.CreateRequest) (order.Order, error)
}

type Card struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type Request struct {
	UserID          string
	Cart            *cart.Cart
	ShippingAddress order.Address
	Card            Card
}

// Service turns a cart into an order. Payment is simulated: the card number
// only has to pass the Luhn check.
type Service struct {
	ledger       Ledger
	paymentDelay time.Duration
}

func NewService(ledger Ledger, paymentDelay time.Duration) *Service {
	if paymentDelay < 0 {
		paymentDelay = 0
	}
	return &Service{ledger: ledger, paymentDelay: paymentDelay}
}

func normalizeCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

func validCard(c Card) bool {
	n := normalizeCardNumber(c.Number)
	if len(n) < 13 || len(n) > 19 {
		return false
	}
	return luna.Validate(n)
}

// Checkout places the order and empties the cart. The cart is left untouched
// when anything fails.
func (s *Service) Checkout(ctx context.Context, req Request) (order.Order, error) {
	if req.Cart == nil || req.Cart.Empty() {
		return order.Order{}, ErrEmptyCart
	}
	if !validCard(req.Card) {
		return order.Order{}, ErrInvalidCard
	}

	if s.paymentDelay > 0 {
		timer := time.NewTimer(s.paymentDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return order.Order{}, ctx.Err()
		case <-timer.C:
		}
	}

	o, err := s.ledger.Create(ctx, orderSvc.CreateRequest{
		UserID:          req.UserID,
		Items:           req.Cart.OrderItems(),
		Total:           req.Cart.Total(),
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return order.Order{}, err
	}
	req.Cart.Clear()

	logger.Log.Info("checkout completed",
		zap.String("order_id", o.ID),
		zap.String("user_id", req.UserID))
	return o, nil
}
