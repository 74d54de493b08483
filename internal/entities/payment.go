package entities

import "time"

type PaymentEventType string

const (
	EventPaymentSucceeded PaymentEventType = "payment_succeeded"
	EventPaymentFailed    PaymentEventType = "payment_failed"
	EventPaymentCanceled  PaymentEventType = "payment_canceled"
	EventChargeRefunded   PaymentEventType = "charge_refunded"
	EventUnknown          PaymentEventType = "unknown"
)

// PaymentEvent is a verified notification from the payment processor.
type PaymentEvent struct {
	ID           string
	Type         PaymentEventType
	ExternalType string
	Reference    string
	Reason       string
	ReceivedAt   time.Time
}

type PaymentRequest struct {
	OrderID     string
	OrderNumber string
	UserID      string
	Amount      int64
	Currency    string
}

type PaymentIntent struct {
	Reference    string
	ClientSecret string
}
