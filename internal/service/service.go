package service

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type StockLedger interface {
	Reserve(ctx context.Context, itemID string, qty int) error
	Release(ctx context.Context, itemID string, qty int) error
	CommitSale(ctx context.Context, itemID string, qty int) error
	RevertSale(ctx context.Context, itemID string, qty int) error
}

type Catalog interface {
	GetItems(ctx context.Context, ids []string) (map[string]entities.StockItem, error)
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	SetPaymentReference(ctx context.Context, orderID, ref string) error
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)
	GetOrderByPaymentReference(ctx context.Context, ref string) (entities.Order, error)
	// Transition reports false when the order no longer matches the precondition.
	Transition(ctx context.Context, orderID string, t entities.Transition) (bool, error)
	ListStalePending(ctx context.Context, before time.Time, limit int) ([]entities.Order, error)
}

type EventLog interface {
	MarkProcessed(ctx context.Context, evt entities.PaymentEvent) (bool, error)
}

type Deduper interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Remember(ctx context.Context, eventID string) error
}

type PaymentGateway interface {
	CreatePaymentRequest(ctx context.Context, req entities.PaymentRequest) (entities.PaymentIntent, error)
	CancelPaymentRequest(ctx context.Context, ref string) error
}

type Verifier interface {
	ParseEvent(payload []byte, signature string) (entities.PaymentEvent, error)
}

// Notifier must not block; delivery happens in the background.
type Notifier interface {
	Notify(n entities.OrderNotification)
}

type CartStore interface {
	Lines(ctx context.Context, userID string) ([]entities.CartLine, error)
	Clear(ctx context.Context, userID string) error
}

type ShippingCalculator interface {
	Cost(subtotal int64, weightGrams int, destination entities.Address, method entities.ShippingMethod) (int64, error)
}

type TaxCalculator interface {
	Tax(subtotal int64, jurisdiction string) int64
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}
