package payment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CreditCardHandler accepts any non-negative amount, including zero.
// Each charge emits one advisory log line; callers must not depend on its
// format.
type CreditCardHandler struct{}

func NewCreditCardHandler() *CreditCardHandler {
	return &CreditCardHandler{}
}

func (h *CreditCardHandler) ProcessPayment(ctx context.Context, amount decimal.Decimal) (bool, error) {
	if amount.IsNegative() {
		return false, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	log.Info().Str("amount", amount.String()).Msg("processing credit card payment")
	return true, nil
}

var _ Handler = (*CreditCardHandler)(nil)
