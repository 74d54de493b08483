package entities

import "time"

// StockEffect is the ledger operation a transition applies to every order line.
type StockEffect int

const (
	StockEffectNone StockEffect = iota
	StockEffectCommit
	StockEffectRelease
	StockEffectRefund
)

// Transition is a guarded single-step change of the order aggregate.
// It applies only when the order is still in FromPayment/FromStock.
type Transition struct {
	FromPayment PaymentState
	FromStatus  OrderStatus // empty means any
	FromStock   StockState

	Payment  PaymentState
	Status   OrderStatus
	Shipping ShippingState
	Stock    StockState
	Effect   StockEffect

	FailureReason string
	Cancellation  *Cancellation
}

var paymentTransitions = map[PaymentEventType]Transition{
	EventPaymentSucceeded: {
		FromPayment: PaymentPending,
		FromStock:   StockReserved,
		Payment:     PaymentSucceeded,
		Status:      OrderConfirmed,
		Shipping:    ShippingPreparing,
		Stock:       StockCommitted,
		Effect:      StockEffectCommit,
	},
	EventPaymentFailed: {
		FromPayment: PaymentPending,
		FromStock:   StockReserved,
		Payment:     PaymentFailed,
		Status:      OrderCancelled,
		Shipping:    ShippingCancelled,
		Stock:       StockReleased,
		Effect:      StockEffectRelease,
	},
	EventPaymentCanceled: {
		FromPayment: PaymentPending,
		FromStock:   StockReserved,
		Payment:     PaymentFailed,
		Status:      OrderCancelled,
		Shipping:    ShippingCancelled,
		Stock:       StockReleased,
		Effect:      StockEffectRelease,
	},
	EventChargeRefunded: {
		FromPayment: PaymentSucceeded,
		FromStock:   StockCommitted,
		Payment:     PaymentRefunded,
		Status:      OrderRefunded,
		Shipping:    ShippingCancelled,
		Stock:       StockReleased,
		Effect:      StockEffectRefund,
	},
}

// TransitionFor returns the transition driven by a payment event, filled with the
// event's reason. The second result is false for event types the state machine ignores.
func TransitionFor(evt PaymentEvent, now time.Time) (Transition, bool) {
	t, ok := paymentTransitions[evt.Type]
	if !ok {
		return Transition{}, false
	}
	switch evt.Type {
	case EventPaymentFailed:
		t.FailureReason = evt.Reason
	case EventPaymentCanceled:
		t.FailureReason = evt.Reason
		t.Cancellation = &Cancellation{At: now, By: CancelledByProcessor, Reason: evt.Reason}
	}
	return t, true
}

// UserCancellation is the transition of an explicit cancel by the owner or the reconciler.
func UserCancellation(by, reason string, now time.Time) Transition {
	return Transition{
		FromPayment:  PaymentPending,
		FromStatus:   OrderPending,
		FromStock:    StockReserved,
		Payment:      PaymentFailed,
		Status:       OrderCancelled,
		Shipping:     ShippingCancelled,
		Stock:        StockReleased,
		Effect:       StockEffectRelease,
		Cancellation: &Cancellation{At: now, By: by, Reason: reason},
	}
}

// Allows reports whether the order currently satisfies the transition's precondition.
func (t Transition) Allows(o Order) bool {
	if o.OrderStatus.Terminal() {
		return false
	}
	if o.PaymentState != t.FromPayment || o.StockState != t.FromStock {
		return false
	}
	return t.FromStatus == "" || o.OrderStatus == t.FromStatus
}

// Apply returns the order as it looks after the transition.
func (t Transition) Apply(o Order, now time.Time) Order {
	o.PaymentState = t.Payment
	o.OrderStatus = t.Status
	o.ShippingState = t.Shipping
	o.StockState = t.Stock
	if t.FailureReason != "" {
		o.FailureReason = t.FailureReason
	}
	if t.Cancellation != nil {
		c := *t.Cancellation
		o.Cancellation = &c
	}
	o.UpdatedAt = now
	return o
}

const (
	CancelledByProcessor = "payment_processor"
	CancelledBySystem    = "system"
)
