package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentSucceeded PaymentState = "succeeded"
	PaymentFailed    PaymentState = "failed"
	PaymentRefunded  PaymentState = "refunded"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// Terminal reports whether no further transition can leave the status.
// Delivered orders can still be refunded.
func (s OrderStatus) Terminal() bool {
	return s == OrderCancelled || s == OrderRefunded
}

type ShippingState string

const (
	ShippingPending   ShippingState = "pending"
	ShippingPreparing ShippingState = "preparing"
	ShippingShipped   ShippingState = "shipped"
	ShippingDelivered ShippingState = "delivered"
	ShippingCancelled ShippingState = "cancelled"
)

// StockState records which ledger effect the order has already applied to its lines.
// Transitions are conditioned on it so a redelivered event can never adjust stock twice.
type StockState string

const (
	StockReserved  StockState = "reserved"
	StockCommitted StockState = "committed"
	StockReleased  StockState = "released"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

type Address struct {
	Name       string `validate:"required,max=200"`
	Line1      string `validate:"required,max=200"`
	Line2      string `validate:"max=200"`
	City       string `validate:"required,max=100"`
	Region     string `validate:"max=100"`
	PostalCode string `validate:"required,max=20"`
	Country    string `validate:"required,iso3166_1_alpha2"`
}

// Jurisdiction is the tax key of the address: country, or country-region when a region is set.
func (a Address) Jurisdiction() string {
	if a.Region == "" {
		return strings.ToUpper(a.Country)
	}
	return strings.ToUpper(a.Country) + "-" + strings.ToUpper(a.Region)
}

type Pricing struct {
	Subtotal int64
	Shipping int64
	Tax      int64
	Total    int64
	Currency string
}

type OrderItem struct {
	ItemID       string
	Title        string
	UnitPrice    int64
	Quantity     int
	LineSubtotal int64
}

type Cancellation struct {
	At     time.Time
	By     string
	Reason string
}

type Order struct {
	ID               string
	Number           string
	UserID           string
	Items            []OrderItem
	Pricing          Pricing
	PaymentState     PaymentState
	PaymentReference string
	OrderStatus      OrderStatus
	ShippingState    ShippingState
	StockState       StockState
	ShippingAddress  Address
	ShippingMethod   ShippingMethod
	FailureReason    string
	Cancellation     *Cancellation
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewOrder builds a pending order with its reservation already applied.
func NewOrder(userID string, items []OrderItem, pricing Pricing, addr Address, method ShippingMethod, now time.Time) Order {
	id := uuid.New()
	return Order{
		ID:              id.String(),
		Number:          newOrderNumber(id, now),
		UserID:          userID,
		Items:           items,
		Pricing:         pricing,
		PaymentState:    PaymentPending,
		OrderStatus:     OrderPending,
		ShippingState:   ShippingPending,
		StockState:      StockReserved,
		ShippingAddress: addr,
		ShippingMethod:  method,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func newOrderNumber(id uuid.UUID, now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(id.String()[:8]))
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Cancellation{})
}
