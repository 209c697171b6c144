package main

import (
	"context"

	"github.com/RoyceAzure/lab/eshop/internal/config"
	"github.com/RoyceAzure/lab/eshop/internal/domain/model"
	"github.com/RoyceAzure/lab/eshop/internal/payment"
	"github.com/RoyceAzure/lab/eshop/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// decliningHandler lets the demo show the cancelled path without a real rail.
type decliningHandler struct{}

func (decliningHandler) ProcessPayment(ctx context.Context, amount decimal.Decimal) (bool, error) {
	return false, nil
}

func main() {
	cf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cf.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	keyboard, err := model.NewPhysicalProduct(
		"Mechanical Keyboard", "87-key hot-swappable mechanical keyboard",
		decimal.NewFromFloat(20.00), 10, decimal.NewFromFloat(2.5))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create product")
	}
	ebook, err := model.NewDigitalProduct(
		"Go Patterns", "e-book on practical Go design patterns",
		decimal.NewFromFloat(10.00), "https://example.com/download/go-patterns")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create product")
	}

	cart := model.NewCart()
	if err := cart.AddItem(keyboard, 2); err != nil {
		log.Fatal().Err(err).Msg("failed to add item")
	}
	if err := cart.AddItem(ebook, 1); err != nil {
		log.Fatal().Err(err).Msg("failed to add item")
	}

	var handler payment.Handler = payment.NewCreditCardHandler()
	if cf.SimulateDecline {
		handler = decliningHandler{}
	}

	orderService := service.NewOrderService(handler)
	order, err := orderService.PlaceOrder(context.Background(), cart)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to place order")
	}

	log.Info().
		Str("order_id", order.ID().String()).
		Str("total", order.Total().String()).
		Str("status", string(order.Status())).
		Int("lines", len(order.Items())).
		Msg("checkout finished")
}
