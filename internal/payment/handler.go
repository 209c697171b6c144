package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type PaymentError error

var ErrNegativeAmount PaymentError = errors.New("refusing to process negative payment amount")

// Handler charges a monetary amount against some payment rail.
//
// A false result is a well-formed decline, not an error. A negative amount
// returns ErrNegativeAmount; how a zero amount is treated is up to the
// implementation.
type Handler interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal) (bool, error)
}
