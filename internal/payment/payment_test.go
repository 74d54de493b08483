package payment_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

const secret = "whsec_test"

func sign(t *testing.T, payload string, at time.Time) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: at,
	})
	return signed.Header
}

func eventJSON(id, typ, object string) string {
	return fmt.Sprintf(`{"id":%q,"object":"event","type":%q,"data":{"object":%s}}`, id, typ, object)
}

func TestVerifier_ParseEvent(t *testing.T) {
	v := payment.NewVerifier(secret, 5*time.Minute)

	testCases := []struct {
		name    string
		payload string
		want    entities.PaymentEvent
		wantErr error
	}{
		{
			name:    "payment succeeded",
			payload: eventJSON("evt_1", "payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`),
			want: entities.PaymentEvent{
				ID: "evt_1", Type: entities.EventPaymentSucceeded, ExternalType: "payment_intent.succeeded", Reference: "pi_1",
			},
		},
		{
			name: "payment failed carries the decline message",
			payload: eventJSON("evt_2", "payment_intent.payment_failed",
				`{"id":"pi_2","object":"payment_intent","last_payment_error":{"message":"Your card was declined."}}`),
			want: entities.PaymentEvent{
				ID: "evt_2", Type: entities.EventPaymentFailed, ExternalType: "payment_intent.payment_failed",
				Reference: "pi_2", Reason: "Your card was declined.",
			},
		},
		{
			name:    "payment canceled carries the cancellation reason",
			payload: eventJSON("evt_3", "payment_intent.canceled", `{"id":"pi_3","object":"payment_intent","cancellation_reason":"abandoned"}`),
			want: entities.PaymentEvent{
				ID: "evt_3", Type: entities.EventPaymentCanceled, ExternalType: "payment_intent.canceled",
				Reference: "pi_3", Reason: "abandoned",
			},
		},
		{
			name:    "charge refunded resolves the payment intent",
			payload: eventJSON("evt_4", "charge.refunded",
				`{"id":"ch_1","object":"charge","payment_intent":"pi_4","amount":10000,"amount_refunded":10000,"refunded":true}`),
			want: entities.PaymentEvent{
				ID: "evt_4", Type: entities.EventChargeRefunded, ExternalType: "charge.refunded", Reference: "pi_4",
			},
		},
		{
			name: "partial refund is not a refund of the order",
			payload: eventJSON("evt_7", "charge.refunded",
				`{"id":"ch_3","object":"charge","payment_intent":"pi_7","amount":10000,"amount_refunded":100,"refunded":false}`),
			want: entities.PaymentEvent{
				ID: "evt_7", Type: entities.EventUnknown, ExternalType: "charge.refunded", Reference: "pi_7",
			},
		},
		{
			name:    "unhandled type",
			payload: eventJSON("evt_5", "customer.created", `{"id":"cus_1","object":"customer"}`),
			want:    entities.PaymentEvent{ID: "evt_5", Type: entities.EventUnknown, ExternalType: "customer.created"},
		},
		{
			name:    "refund without payment intent",
			payload: eventJSON("evt_6", "charge.refunded", `{"id":"ch_2","object":"charge"}`),
			wantErr: entities.ErrMalformedEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.ParseEvent([]byte(tc.payload), sign(t, tc.payload, time.Now()))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVerifier_RejectsBadSignatures(t *testing.T) {
	v := payment.NewVerifier(secret, 5*time.Minute)
	payload := eventJSON("evt_1", "payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`)

	t.Run("tampered payload", func(t *testing.T) {
		header := sign(t, payload, time.Now())
		_, err := v.ParseEvent([]byte(payload+" "), header)
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("expired timestamp", func(t *testing.T) {
		header := sign(t, payload, time.Now().Add(-time.Hour))
		_, err := v.ParseEvent([]byte(payload), header)
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := v.ParseEvent([]byte(payload), "")
		assert.ErrorIs(t, err, entities.ErrInvalidSignature)
	})
}

func newTestBackend(t *testing.T, handler http.HandlerFunc) stripe.Backend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
}

func TestGateway_CreatePaymentRequest(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "checkout-ORD-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "3281", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "order-1", r.PostForm.Get("metadata[order_id]"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_abc"}`)
	})

	g := payment.NewGateway("sk_test", backend)
	intent, err := g.CreatePaymentRequest(context.Background(), entities.PaymentRequest{
		OrderID: "order-1", OrderNumber: "ORD-1", UserID: "user-1", Amount: 3281, Currency: "usd",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentIntent{Reference: "pi_1", ClientSecret: "pi_1_secret_abc"}, intent)
}

func TestGateway_CreatePaymentRequestError(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`)
	})

	g := payment.NewGateway("sk_test", backend)
	_, err := g.CreatePaymentRequest(context.Background(), entities.PaymentRequest{OrderNumber: "ORD-2", Amount: 1, Currency: "usd"})
	assert.Error(t, err)
}

func TestGateway_CancelPaymentRequest(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_1/cancel", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "requested_by_customer", r.PostForm.Get("cancellation_reason"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"pi_1","object":"payment_intent","status":"canceled"}`)
	})

	g := payment.NewGateway("sk_test", backend)
	assert.NoError(t, g.CancelPaymentRequest(context.Background(), "pi_1"))
}
