package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

const (
	signatureHeader = "Stripe-Signature"
	maxWebhookBody  = 64 << 10
)

type NotificationHandler interface {
	HandleNotification(ctx context.Context, payload []byte, signature string) (service.Outcome, error)
}

type WebhookHandler struct {
	logger *slog.Logger
	events NotificationHandler
}

func NewWebhookHandler(logger *slog.Logger, events NotificationHandler) *WebhookHandler {
	return &WebhookHandler{
		logger: logger.With(slog.String("handler", "webhook")),
		events: events,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/payments", h.HandlePayment)
}

// HandlePayment receives payment processor notifications.
// Anything other than 200 makes the processor redeliver the event.
// @Summary      Payment webhook
// @Description  Verifies the signature and applies the payment event to its order
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Processor signature"
// @Success      200  {object}  WebhookResponse
// @Failure      400  {object}  utils.ErrorResponse "Bad signature or malformed event"
// @Failure      500  {object}  utils.ErrorResponse "Event not applied, redeliver"
// @Router       /webhooks/payments [post]
func (h *WebhookHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		paymentEventsTotal.WithLabelValues("webhook", "rejected").Inc()
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	outcome, err := h.events.HandleNotification(ctx, payload, r.Header.Get(signatureHeader))

	switch {
	case err == nil:
		paymentEventsTotal.WithLabelValues("webhook", string(outcome)).Inc()
		utils.WriteJSON(w, WebhookResponse{Outcome: string(outcome)}, http.StatusOK)
	case errors.Is(err, entities.ErrInvalidSignature):
		paymentEventsTotal.WithLabelValues("webhook", "rejected").Inc()
		h.logger.WarnContext(ctx, "rejected payment notification", slog.Any("error", err))
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMalformedEvent):
		paymentEventsTotal.WithLabelValues("webhook", "rejected").Inc()
		h.logger.WarnContext(ctx, "malformed payment notification", slog.Any("error", err))
		utils.WriteError(w, "malformed event", http.StatusBadRequest)
	default:
		paymentEventsTotal.WithLabelValues("webhook", "failed").Inc()
		h.logger.ErrorContext(ctx, "failed to apply payment notification", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
