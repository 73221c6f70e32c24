package payments

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates a payment for a booking and returns a provider
// reference. Webhooks, refunds and settlement are handled elsewhere; the
// booking flow only needs the intent.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount float64, currency, bookingID, userID string) (string, error)
}

// StripePaymentService implements PaymentService with Stripe PaymentIntents.
type StripePaymentService struct {
	logger *zap.Logger
}

func NewStripePaymentService(logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{logger: logger}
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, amount float64, currency, bookingID, userID string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("payment amount must be positive, got %v", amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(strings.ToLower(currency)),
		Metadata: map[string]string{
			"bookingId": bookingID,
			"userId":    userID,
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}

	s.logger.Info("payment intent created",
		zap.String("bookingId", bookingID),
		zap.String("paymentIntent", pi.ID),
		zap.Int64("amount", pi.Amount))
	return pi.ID, nil
}
