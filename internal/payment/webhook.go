package payment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

var eventTypes = map[stripe.EventType]entities.PaymentEventType{
	stripe.EventTypePaymentIntentSucceeded:     entities.EventPaymentSucceeded,
	stripe.EventTypePaymentIntentPaymentFailed: entities.EventPaymentFailed,
	stripe.EventTypePaymentIntentCanceled:      entities.EventPaymentCanceled,
	stripe.EventTypeChargeRefunded:             entities.EventChargeRefunded,
}

type verifier struct {
	secret    string
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *verifier {
	return &verifier{secret: secret, tolerance: tolerance}
}

// ParseEvent checks the Stripe-Signature header and maps the event onto the order
// state machine. Types the state machine does not handle come back as EventUnknown.
func (v *verifier) ParseEvent(payload []byte, signature string) (entities.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidSignature, err)
	}

	evt := entities.PaymentEvent{
		ID:           event.ID,
		Type:         entities.EventUnknown,
		ExternalType: string(event.Type),
	}
	if evt.ID == "" {
		return entities.PaymentEvent{}, fmt.Errorf("%w: missing event id", entities.ErrMalformedEvent)
	}

	typ, ok := eventTypes[event.Type]
	if !ok {
		return evt, nil
	}
	if event.Data == nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %s has no data", entities.ErrMalformedEvent, event.ID)
	}
	evt.Type = typ

	switch typ {
	case entities.EventChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrMalformedEvent, err)
		}
		if charge.PaymentIntent == nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: charge %s has no payment intent", entities.ErrMalformedEvent, charge.ID)
		}
		evt.Reference = charge.PaymentIntent.ID
		// partial refunds leave the sale in place
		if !charge.Refunded {
			evt.Type = entities.EventUnknown
		}
	default:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrMalformedEvent, err)
		}
		evt.Reference = pi.ID
		if pi.LastPaymentError != nil {
			evt.Reason = pi.LastPaymentError.Msg
		}
		if typ == entities.EventPaymentCanceled && pi.CancellationReason != "" {
			evt.Reason = string(pi.CancellationReason)
		}
	}

	if evt.Reference == "" {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %s has no payment reference", entities.ErrMalformedEvent, event.ID)
	}
	return evt, nil
}
