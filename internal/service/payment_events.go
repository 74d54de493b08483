package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

// Outcome describes what happened to a verified payment event.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeStale     Outcome = "stale"
	OutcomeUnmatched Outcome = "unmatched"
)

type paymentEventService struct {
	logger    *slog.Logger
	txManager trm.Manager
	verifier  Verifier
	orders    OrderRepo
	ledger    StockLedger
	events    EventLog
	dedup     Deduper
	gateway   PaymentGateway
	notifier  Notifier
	cache     Cache
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewPaymentEventService(
	logger *slog.Logger,
	txManager trm.Manager,
	verifier Verifier,
	orders OrderRepo,
	ledger StockLedger,
	events EventLog,
	dedup Deduper,
	gateway PaymentGateway,
	notifier Notifier,
	cache Cache,
) *paymentEventService {
	return &paymentEventService{
		logger:    logger.With(slog.String("service", "payment_events")),
		txManager: txManager,
		verifier:  verifier,
		orders:    orders,
		ledger:    ledger,
		events:    events,
		dedup:     dedup,
		gateway:   gateway,
		notifier:  notifier,
		cache:     cache,
		retry:     utils.DefaultRetry,
		now:       time.Now,
	}
}

// HandleNotification verifies a raw processor delivery and applies it.
// Only ErrInvalidSignature and transient failures are returned; everything
// else is acknowledged.
func (s *paymentEventService) HandleNotification(ctx context.Context, payload []byte, signature string) (Outcome, error) {
	evt, err := s.verifier.ParseEvent(payload, signature)
	if err != nil {
		return "", err
	}
	if evt.ReceivedAt.IsZero() {
		evt.ReceivedAt = s.now()
	}

	outcome, err := s.Apply(ctx, evt)
	if errors.Is(err, entities.ErrOrderNotFound) {
		s.logger.Warn("payment event for unknown order",
			slog.String("event", evt.ID),
			slog.String("type", evt.ExternalType),
			slog.String("reference", evt.Reference),
		)
		return OutcomeUnmatched, nil
	}
	return outcome, err
}

// Apply runs the transition driven by evt together with its stock effects and the
// processed-event record in one transaction.
func (s *paymentEventService) Apply(ctx context.Context, evt entities.PaymentEvent) (Outcome, error) {
	logger := s.logger.With(
		slog.String("event", evt.ID),
		slog.String("type", evt.ExternalType),
		slog.String("reference", evt.Reference),
	)

	if _, ok := entities.TransitionFor(evt, s.now()); !ok {
		logger.Info("ignoring payment event")
		return OutcomeIgnored, nil
	}

	if seen, err := s.dedup.Seen(ctx, evt.ID); err != nil {
		logger.Warn("dedup lookup failed", slog.Any("error", err))
	} else if seen {
		logger.Debug("payment event already processed")
		return OutcomeDuplicate, nil
	}

	var (
		outcome Outcome
		updated entities.Order
	)
	err := utils.Retry(ctx, s.retry, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			outcome, updated, err = s.apply(ctx, evt)
			return err
		})
	}, entities.ErrOrderNotFound)
	if err != nil {
		if !errors.Is(err, entities.ErrOrderNotFound) {
			logger.Error("failed to apply payment event", slog.Any("error", err))
		}
		return "", err
	}

	if err := s.dedup.Remember(ctx, evt.ID); err != nil {
		logger.Warn("failed to remember payment event", slog.Any("error", err))
	}

	switch outcome {
	case OutcomeApplied:
		s.cache.Delete(updated.Number)
		logger.Info("payment event applied",
			slog.String("order", updated.Number),
			slog.String("payment_state", string(updated.PaymentState)),
		)
		// a failed attempt leaves the intent payable
		if evt.Type == entities.EventPaymentFailed && updated.PaymentReference != "" {
			if err := s.gateway.CancelPaymentRequest(ctx, updated.PaymentReference); err != nil {
				logger.Warn("failed to cancel payment request", slog.String("order", updated.Number), slog.Any("error", err))
			}
		}
		if n, ok := entities.NotificationFor(updated, s.now()); ok {
			s.notifier.Notify(n)
		}
	case OutcomeStale:
		if evt.Type == entities.EventPaymentSucceeded && updated.OrderStatus.Terminal() {
			logger.Error("payment succeeded for a closed order, refund required",
				slog.String("order", updated.Number),
				slog.String("order_status", string(updated.OrderStatus)),
			)
			break
		}
		logger.Info("payment event does not match order state", slog.String("order", updated.Number))
	case OutcomeDuplicate:
		logger.Debug("payment event already processed")
	}
	return outcome, nil
}

func (s *paymentEventService) apply(ctx context.Context, evt entities.PaymentEvent) (Outcome, entities.Order, error) {
	first, err := s.events.MarkProcessed(ctx, evt)
	if err != nil {
		return "", entities.Order{}, err
	}
	if !first {
		return OutcomeDuplicate, entities.Order{}, nil
	}

	order, err := s.orders.GetOrderByPaymentReference(ctx, evt.Reference)
	if err != nil {
		return "", entities.Order{}, err
	}

	now := s.now()
	t, _ := entities.TransitionFor(evt, now)
	if !t.Allows(order) {
		return OutcomeStale, order, nil
	}

	ok, err := s.orders.Transition(ctx, order.ID, t)
	if err != nil {
		return "", entities.Order{}, err
	}
	if !ok {
		return OutcomeStale, order, nil
	}

	if err := applyStockEffect(ctx, s.ledger, t.Effect, order.Items); err != nil {
		return "", entities.Order{}, err
	}

	return OutcomeApplied, t.Apply(order, now), nil
}

func applyStockEffect(ctx context.Context, ledger StockLedger, effect entities.StockEffect, items []entities.OrderItem) error {
	for _, it := range items {
		var err error
		switch effect {
		case entities.StockEffectCommit:
			err = ledger.CommitSale(ctx, it.ItemID, it.Quantity)
		case entities.StockEffectRelease:
			err = ledger.Release(ctx, it.ItemID, it.Quantity)
		case entities.StockEffectRefund:
			if err = ledger.Release(ctx, it.ItemID, it.Quantity); err == nil {
				err = ledger.RevertSale(ctx, it.ItemID, it.Quantity)
			}
		}
		if err != nil {
			return fmt.Errorf("failed to adjust stock for %s: %w", it.ItemID, err)
		}
	}
	return nil
}
