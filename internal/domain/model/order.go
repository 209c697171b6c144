package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is an immutable record produced by the order service. Its items are
// a snapshot of the cart at placement time and its status is terminal: the
// order is born PAID or CANCELLED and never leaves that state.
type Order struct {
	id        uuid.UUID
	items     []LineItem
	total     decimal.Decimal
	status    OrderStatus
	orderDate time.Time
}

func NewOrder(id uuid.UUID, items []LineItem, total decimal.Decimal, status OrderStatus, orderDate time.Time) *Order {
	return &Order{
		id:        id,
		items:     items,
		total:     total,
		status:    status,
		orderDate: orderDate,
	}
}

func (o *Order) ID() uuid.UUID {
	return o.id
}

// Items returns a copy of the snapshotted line items in cart order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Status() OrderStatus {
	return o.status
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}
