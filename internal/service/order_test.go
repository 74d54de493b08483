package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	orders   *mocks.MockOrderRepo
	ledger   *mocks.MockStockLedger
	gateway  *mocks.MockPaymentGateway
	notifier *mocks.MockNotifier
	cache    *mocks.MockCache
}

func newOrderMocks(t *testing.T) orderMocks {
	return orderMocks{
		orders:   mocks.NewMockOrderRepo(t),
		ledger:   mocks.NewMockStockLedger(t),
		gateway:  mocks.NewMockPaymentGateway(t),
		notifier: mocks.NewMockNotifier(t),
		cache:    mocks.NewMockCache(t),
	}
}

func storedOrder() entities.Order {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.NewOrder("user-1", []entities.OrderItem{
		{ItemID: mug.ID, Title: "Mug", UnitPrice: 500, Quantity: 2, LineSubtotal: 1000},
	}, entities.Pricing{Subtotal: 1000, Shipping: 600, Total: 1600, Currency: "usd"}, homeAddress, entities.ShippingStandard, created)
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(m orderMocks)

	pending := storedOrder()
	number := pending.Number
	closed := pending
	closed.PaymentState = entities.PaymentFailed
	closed.OrderStatus = entities.OrderCancelled
	closedData, err := closed.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		userID       string
		mockBehavior MockBehavior
		want         entities.Order
		wantErr      error
	}{
		{
			name:   "success from cache",
			userID: "user-1",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(number).Return(closedData, true).Once()
			},
			want: closed,
		},
		{
			name:   "broken cache entry is replaced",
			userID: "user-1",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(number).Return([]byte("broken"), true).Once()
				m.cache.EXPECT().Delete(number).Return().Once()
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, number).Return(closed, nil).Once()
				m.cache.EXPECT().Set(number, closedData).Return().Once()
			},
			want: closed,
		},
		{
			name:   "closed order from repo is cached",
			userID: "user-1",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(number).Return(nil, false).Once()
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, number).Return(closed, nil).Once()
				m.cache.EXPECT().Set(number, closedData).Return().Once()
			},
			want: closed,
		},
		{
			name:   "open order is not cached",
			userID: "user-1",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(number).Return(nil, false).Once()
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, number).Return(pending, nil).Once()
			},
			want: pending,
		},
		{
			name:   "order of another user",
			userID: "user-2",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(number).Return(closedData, true).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:   "not found in repo",
			userID: "user-1",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(number).Return(nil, false).Once()
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, number).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "second attempt from repo",
			userID: "user-1",
			mockBehavior: func(m orderMocks) {
				m.cache.EXPECT().Get(number).Return(nil, false).Once()
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, number).Return(entities.Order{}, errors.New("some error")).Once()
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, number).Return(pending, nil).Once()
			},
			want: pending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)

			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.orders, m.ledger, m.gateway, m.notifier, m.cache)
			got, err := svc.GetOrder(context.Background(), number, tc.userID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	type MockBehavior func(m orderMocks, order entities.Order)

	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		userID       string
		prepare      func(o *entities.Order)
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "OK without payment reference",
			userID: "user-1",
			mockBehavior: func(m orderMocks, order entities.Order) {
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.Number).Return(order, nil)
				m.orders.EXPECT().Transition(mock.Anything, order.ID, mock.MatchedBy(func(t entities.Transition) bool {
					return t.Cancellation != nil && t.Cancellation.By == "user-1" && t.Cancellation.Reason == "changed my mind"
				})).Return(true, nil)
				m.ledger.EXPECT().Release(mock.Anything, mug.ID, 2).Return(nil)
				m.cache.EXPECT().Delete(order.Number).Return()
				m.notifier.EXPECT().Notify(mock.MatchedBy(func(n entities.OrderNotification) bool {
					return n.Kind == entities.NotifyOrderCancelled && n.Reason == "changed my mind"
				})).Return()
			},
		},
		{
			name:    "OK cancels the payment request",
			userID:  "user-1",
			prepare: func(o *entities.Order) { o.PaymentReference = "pi_123" },
			mockBehavior: func(m orderMocks, order entities.Order) {
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.Number).Return(order, nil)
				m.orders.EXPECT().Transition(mock.Anything, order.ID, mock.Anything).Return(true, nil)
				m.ledger.EXPECT().Release(mock.Anything, mug.ID, 2).Return(nil)
				m.cache.EXPECT().Delete(order.Number).Return()
				m.gateway.EXPECT().CancelPaymentRequest(mock.Anything, "pi_123").Return(errors.New("already canceled"))
				m.notifier.EXPECT().Notify(mock.Anything).Return()
			},
		},
		{
			name:   "not the owner",
			userID: "user-2",
			mockBehavior: func(m orderMocks, order entities.Order) {
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.Number).Return(order, nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "already paid",
			userID:  "user-1",
			prepare: func(o *entities.Order) { o.PaymentState = entities.PaymentSucceeded; o.StockState = entities.StockCommitted },
			mockBehavior: func(m orderMocks, order entities.Order) {
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.Number).Return(order, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "payment event won the race",
			userID: "user-1",
			mockBehavior: func(m orderMocks, order entities.Order) {
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.Number).Return(order, nil)
				m.orders.EXPECT().Transition(mock.Anything, order.ID, mock.Anything).Return(false, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "stock release fails",
			userID: "user-1",
			mockBehavior: func(m orderMocks, order entities.Order) {
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.Number).Return(order, nil)
				m.orders.EXPECT().Transition(mock.Anything, order.ID, mock.Anything).Return(true, nil)
				m.ledger.EXPECT().Release(mock.Anything, mug.ID, 2).Return(dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:   "unknown order",
			userID: "user-1",
			mockBehavior: func(m orderMocks, order entities.Order) {
				m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.Number).Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := storedOrder()
			if tc.prepare != nil {
				tc.prepare(&order)
			}
			m := newOrderMocks(t)
			tc.mockBehavior(m, order)

			svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.orders, m.ledger, m.gateway, m.notifier, m.cache)
			got, err := svc.CancelOrder(context.Background(), order.Number, tc.userID, "changed my mind")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.OrderCancelled, got.OrderStatus)
			assert.Equal(t, entities.PaymentFailed, got.PaymentState)
			assert.Equal(t, entities.ShippingCancelled, got.ShippingState)
			assert.Equal(t, entities.StockReleased, got.StockState)
		})
	}
}

func TestReconciler_RunOnce(t *testing.T) {
	m := newOrderMocks(t)

	stale := storedOrder()
	raced := storedOrder()

	m.orders.EXPECT().ListStalePending(mock.Anything, mock.Anything, 50).Return([]entities.Order{stale, raced}, nil)
	m.orders.EXPECT().Transition(mock.Anything, stale.ID, mock.MatchedBy(func(t entities.Transition) bool {
		return t.Cancellation != nil && t.Cancellation.By == entities.CancelledBySystem
	})).Return(true, nil)
	m.orders.EXPECT().Transition(mock.Anything, raced.ID, mock.Anything).Return(false, nil)
	m.ledger.EXPECT().Release(mock.Anything, mug.ID, 2).Return(nil).Once()
	m.cache.EXPECT().Delete(stale.Number).Return()
	m.notifier.EXPECT().Notify(mock.MatchedBy(func(n entities.OrderNotification) bool {
		return n.Kind == entities.NotifyOrderCancelled && n.OrderNumber == stale.Number
	})).Return()

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.orders, m.ledger, m.gateway, m.notifier, m.cache)
	r := service.NewReconciler(discardLogger(), m.orders, svc, service.ReconcileConfig{
		Interval:   time.Minute,
		PendingTTL: 15 * time.Minute,
		Batch:      50,
	})

	n, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReconciler_ListFailure(t *testing.T) {
	m := newOrderMocks(t)
	m.orders.EXPECT().ListStalePending(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	svc := service.NewOrderService(discardLogger(), passthroughTx(t), m.orders, m.ledger, m.gateway, m.notifier, m.cache)
	r := service.NewReconciler(discardLogger(), m.orders, svc, service.ReconcileConfig{Interval: time.Minute, PendingTTL: time.Minute, Batch: 10})

	_, err := r.RunOnce(context.Background())
	assert.Error(t, err)
}
