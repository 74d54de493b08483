package payment

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

type gateway struct {
	intents paymentintent.Client
}

// NewGateway creates payment intents through backend, normally stripe.GetBackend(stripe.APIBackend).
func NewGateway(secretKey string, backend stripe.Backend) *gateway {
	return &gateway{
		intents: paymentintent.Client{B: backend, Key: secretKey},
	}
}

// CreatePaymentRequest is idempotent per order number, so a retried checkout never
// opens a second intent for the same order.
func (g *gateway) CreatePaymentRequest(ctx context.Context, req entities.PaymentRequest) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String("Order " + req.OrderNumber),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey("checkout-" + req.OrderNumber)
	params.AddMetadata("order_id", req.OrderID)
	params.AddMetadata("order_number", req.OrderNumber)
	params.AddMetadata("user_id", req.UserID)

	pi, err := g.intents.New(params)
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return entities.PaymentIntent{Reference: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *gateway) CancelPaymentRequest(ctx context.Context, ref string) error {
	params := &stripe.PaymentIntentCancelParams{
		CancellationReason: stripe.String(string(stripe.PaymentIntentCancellationReasonRequestedByCustomer)),
	}
	params.Context = ctx

	if _, err := g.intents.Cancel(ref, params); err != nil {
		return fmt.Errorf("failed to cancel payment intent: %w", err)
	}
	return nil
}
