package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentClient abstracts the payment provider
type IntentClient interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (id, clientSecret string, err error)
	IntentStatus(ctx context.Context, id string) (string, error)
}

// StripeClient implements IntentClient against the Stripe API
type StripeClient struct{}

// NewStripeClient configures the Stripe SDK and returns a client
func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

// CreateIntent creates a payment intent
func (c *StripeClient) CreateIntent(_ context.Context, amountCents int64, currency string, metadata map[string]string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return pi.ID, pi.ClientSecret, nil
}

// IntentStatus fetches the current status of a payment intent
func (c *StripeClient) IntentStatus(_ context.Context, id string) (string, error) {
	pi, err := paymentintent.Get(id, nil)
	if err != nil {
		return "", err
	}
	return string(pi.Status), nil
}
