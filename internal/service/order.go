package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	ledger    StockLedger
	gateway   PaymentGateway
	notifier  Notifier
	cache     Cache
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	ledger StockLedger,
	gateway PaymentGateway,
	notifier Notifier,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		ledger:    ledger,
		gateway:   gateway,
		notifier:  notifier,
		cache:     cache,
		now:       time.Now,
	}
}

// GetOrder returns an order of userID by its number.
func (s *orderService) GetOrder(ctx context.Context, number, userID string) (entities.Order, error) {
	order, err := s.getOrder(ctx, number)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

// getOrder reads through the cache. Only closed orders are cached: they never change,
// so a read racing a transition cannot leave a stale entry behind.
func (s *orderService) getOrder(ctx context.Context, number string) (entities.Order, error) {
	if data, ok := s.cache.Get(number); ok {
		var order entities.Order
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order", number), slog.Any("error", err))
		s.cache.Delete(number)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByNumber(ctx, number)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	if !order.OrderStatus.Terminal() {
		return order, nil
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order", number), slog.Any("error", err))
		return order, nil
	}
	s.cache.Set(number, data)
	return order, nil
}

// CancelOrder cancels a pending order on behalf of its owner and releases its stock.
func (s *orderService) CancelOrder(ctx context.Context, number, userID, reason string) (entities.Order, error) {
	order, err := s.orders.GetOrderByNumber(ctx, number)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrForbidden
	}

	return s.Cancel(ctx, order, userID, reason)
}

// Cancel applies a cancellation transition and releases the order's stock in one
// transaction, then cancels the payment request and notifies the owner.
func (s *orderService) Cancel(ctx context.Context, order entities.Order, by, reason string) (entities.Order, error) {
	now := s.now()
	t := entities.UserCancellation(by, reason, now)
	if !t.Allows(order) {
		return entities.Order{}, fmt.Errorf("%w: order %s is %s", entities.ErrInvalidTransition, order.Number, order.OrderStatus)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.orders.Transition(ctx, order.ID, t)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: order %s changed concurrently", entities.ErrInvalidTransition, order.Number)
		}
		return applyStockEffect(ctx, s.ledger, t.Effect, order.Items)
	})
	if err != nil {
		return entities.Order{}, err
	}

	cancelled := t.Apply(order, now)
	s.cache.Delete(order.Number)

	logger := s.logger.With(slog.String("order", order.Number))
	logger.Info("order cancelled", slog.String("by", by))

	if order.PaymentReference != "" {
		if err := s.gateway.CancelPaymentRequest(ctx, order.PaymentReference); err != nil {
			logger.Warn("failed to cancel payment request", slog.String("reference", order.PaymentReference), slog.Any("error", err))
		}
	}

	if n, ok := entities.NotificationFor(cancelled, now); ok {
		s.notifier.Notify(n)
	}
	return cancelled, nil
}
