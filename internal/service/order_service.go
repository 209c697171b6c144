package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/eshop/internal/domain/model"
	"github.com/RoyceAzure/lab/eshop/internal/payment"
	"github.com/RoyceAzure/lab/eshop/internal/pkg/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyCart = errors.New("cannot place an order with an empty cart")
)

type IOrderService interface {
	PlaceOrder(ctx context.Context, cart *model.Cart) (*model.Order, error)
}

// OrderService turns a cart into an immutable order through exactly one
// payment handler, captured for the service's lifetime. The service itself
// holds no other state; share it across goroutines only if the handler is
// safe to share.
type OrderService struct {
	paymentHandler payment.Handler
}

func NewOrderService(paymentHandler payment.Handler) *OrderService {
	if util.IsNil(paymentHandler) {
		panic("order service dependency paymentHandler is nil")
	}
	return &OrderService{paymentHandler: paymentHandler}
}

// PlaceOrder validates the cart, snapshots its line items, charges the total
// through the payment handler and returns the resulting order.
//
// A declined payment is not an error: the order comes back with status
// CANCELLED. Only an empty cart (ErrEmptyCart) or a handler error produces
// no order. The cart stays valid and mutable afterwards; later mutations do
// not reach the returned order.
func (o *OrderService) PlaceOrder(ctx context.Context, cart *model.Cart) (*model.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// snapshot before charging, order and quantities preserved
	snapshot := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, *item)
	}

	total := cart.CalculateTotal()
	orderID := uuid.New()

	paid, err := o.paymentHandler.ProcessPayment(ctx, total)
	if err != nil {
		return nil, fmt.Errorf("process payment of %s failed: %w", total, err)
	}

	status := model.OrderStatusCancelled
	if paid {
		status = model.OrderStatusPaid
	}

	order := model.NewOrder(orderID, snapshot, total, status, time.Now().UTC())
	log.Info().
		Str("order_id", order.ID().String()).
		Str("amount", order.Total().String()).
		Str("status", string(order.Status())).
		Msg("order placed")
	return order, nil
}

var _ IOrderService = (*OrderService)(nil)
