package core

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// stripeGateway implements PaymentGateway with the Stripe SDK.
type stripeGateway struct{}

// NewStripeGateway configures the Stripe client with the secret key and
// returns the gateway. The key is process-wide state in the Stripe SDK.
func NewStripeGateway(secretKey string) PaymentGateway {
	stripe.Key = secretKey
	return &stripeGateway{}
}

// CreatePaymentIntent creates a card payment intent for the given amount and
// returns the client secret the frontend completes the charge with.
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	if amountInCents <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidAmount, amountInCents)
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
