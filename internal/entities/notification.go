package entities

import "time"

type NotificationKind string

const (
	NotifyOrderConfirmed NotificationKind = "order_confirmed"
	NotifyOrderFailed    NotificationKind = "order_failed"
	NotifyOrderRefunded  NotificationKind = "order_refunded"
	NotifyOrderCancelled NotificationKind = "order_cancelled"
)

type OrderNotification struct {
	Kind        NotificationKind `json:"kind"`
	OrderNumber string           `json:"order_number"`
	UserID      string           `json:"user_id"`
	Total       int64            `json:"total"`
	Currency    string           `json:"currency"`
	Reason      string           `json:"reason,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// NotificationFor builds the outbound message for an order that just reached a new payment state.
func NotificationFor(o Order, now time.Time) (OrderNotification, bool) {
	n := OrderNotification{
		OrderNumber: o.Number,
		UserID:      o.UserID,
		Total:       o.Pricing.Total,
		Currency:    o.Pricing.Currency,
		Reason:      o.FailureReason,
		OccurredAt:  now,
	}
	switch {
	case o.PaymentState == PaymentSucceeded:
		n.Kind = NotifyOrderConfirmed
	case o.PaymentState == PaymentRefunded:
		n.Kind = NotifyOrderRefunded
	case o.Cancellation != nil && o.Cancellation.By != CancelledByProcessor:
		n.Kind = NotifyOrderCancelled
		n.Reason = o.Cancellation.Reason
	case o.PaymentState == PaymentFailed:
		n.Kind = NotifyOrderFailed
		if n.Reason == "" && o.Cancellation != nil {
			n.Reason = o.Cancellation.Reason
		}
	default:
		return OrderNotification{}, false
	}
	return n, true
}
