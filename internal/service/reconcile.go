package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type OrderCanceller interface {
	Cancel(ctx context.Context, order entities.Order, by, reason string) (entities.Order, error)
}

type ReconcileConfig struct {
	Interval   time.Duration
	PendingTTL time.Duration
	Batch      int
}

// reconciler cancels orders that never received a payment reference,
// which happens when the payment request fails after the order was created.
type reconciler struct {
	logger    *slog.Logger
	orders    OrderRepo
	canceller OrderCanceller
	cfg       ReconcileConfig
	now       func() time.Time
}

func NewReconciler(logger *slog.Logger, orders OrderRepo, canceller OrderCanceller, cfg ReconcileConfig) *reconciler {
	return &reconciler{
		logger:    logger.With(slog.String("service", "reconciler")),
		orders:    orders,
		canceller: canceller,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Start runs the reconciliation loop until ctx is cancelled.
func (r *reconciler) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
					r.logger.Error("reconciliation failed", slog.Any("error", err))
				}
			}
		}
	}()
	return nil
}

// RunOnce cancels one batch of stale orders and returns how many were cancelled.
func (r *reconciler) RunOnce(ctx context.Context) (int, error) {
	stale, err := r.orders.ListStalePending(ctx, r.now().Add(-r.cfg.PendingTTL), r.cfg.Batch)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, order := range stale {
		_, err := r.canceller.Cancel(ctx, order, entities.CancelledBySystem, "payment was never requested")
		if errors.Is(err, entities.ErrInvalidTransition) {
			continue
		}
		if err != nil {
			r.logger.Error("failed to cancel stale order", slog.String("order", order.Number), slog.Any("error", err))
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		r.logger.Info("stale orders cancelled", slog.Int("count", cancelled))
	}
	return cancelled, nil
}
