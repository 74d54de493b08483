package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWebhookHandler_HandlePayment(t *testing.T) {
	const payload = `{"id":"evt_1","type":"payment_intent.succeeded"}`

	testCases := []struct {
		name       string
		outcome    service.Outcome
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "applied",
			outcome:    service.OutcomeApplied,
			wantStatus: http.StatusOK,
			wantBody:   `"outcome":"applied"`,
		},
		{
			name:       "duplicate is acknowledged",
			outcome:    service.OutcomeDuplicate,
			wantStatus: http.StatusOK,
			wantBody:   `"outcome":"duplicate"`,
		},
		{
			name:       "unmatched is acknowledged",
			outcome:    service.OutcomeUnmatched,
			wantStatus: http.StatusOK,
			wantBody:   `"outcome":"unmatched"`,
		},
		{
			name:       "bad signature",
			err:        fmt.Errorf("%w: no signatures found", entities.ErrInvalidSignature),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid signature"`,
		},
		{
			name:       "malformed event",
			err:        fmt.Errorf("%w: missing event id", entities.ErrMalformedEvent),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"malformed event"`,
		},
		{
			name:       "transient failure asks for redelivery",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events := mocks.NewMockNotificationHandler(t)
			events.EXPECT().
				HandleNotification(mock.Anything, []byte(payload), "t=1,v1=abc").
				Return(tc.outcome, tc.err).Once()

			r := chi.NewRouter()
			handler.NewWebhookHandler(discardLogger(), events).Init(r)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(payload))
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")

			status, body := serve(t, r, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestWebhookHandler_RejectsOversizedBody(t *testing.T) {
	events := mocks.NewMockNotificationHandler(t)

	r := chi.NewRouter()
	handler.NewWebhookHandler(discardLogger(), events).Init(r)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(strings.Repeat("x", 128<<10)))
	status, _ := serve(t, r, req)

	assert.Equal(t, http.StatusBadRequest, status)
}
