// Package payments wraps the Stripe payment-intent API behind a small
// interface so handlers and tests do not depend on the SDK directly.
package payments

import (
	"context"
	"fmt"

	"github.com/mealmasterhq/meal-master-api/internal/config"
	"github.com/mealmasterhq/meal-master-api/internal/platform/logger"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// IntentService creates payment intents for membership purchases.
type IntentService interface {
	// CreateIntent creates a card payment intent for the given price in
	// major currency units and returns the client-side confirmation
	// secret. No idempotency key is attached: a caller retry creates a
	// fresh intent.
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// stripeIntentService is the Stripe-backed IntentService implementation.
type stripeIntentService struct {
	api      *client.API
	currency string
}

var _ IntentService = (*stripeIntentService)(nil)

// NewStripeIntentService creates an IntentService using the configured
// Stripe secret key and currency.
func NewStripeIntentService(cfg config.StripeConfig) IntentService {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &stripeIntentService{
		api:      api,
		currency: cfg.Currency,
	}
}

// CreateIntent converts the price to the smallest currency unit and
// asks Stripe for a card payment intent.
func (s *stripeIntentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	log := logger.FromContext(ctx)

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(ToMinorUnits(price)),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		log.Error("failed to create payment intent",
			"error", err,
			"currency", s.currency)
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

// ToMinorUnits converts a major-unit price into the smallest currency
// unit by multiplying by 100 and truncating.
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}
