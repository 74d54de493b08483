package handler

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

// CheckoutRequest is the cart the client confirms for purchase.
// Without items the user's stored cart is checked out.
type CheckoutRequest struct {
	Items           []CartLine `json:"items,omitempty" validate:"dive"`
	ShippingAddress Address    `json:"shipping_address" validate:"required"`
	ShippingMethod  string     `json:"shipping_method" validate:"required,oneof=standard express"`
}

// CartLine is one item as the client last saw it
type CartLine struct {
	ItemID    string `json:"item_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
}

// Address is the shipping destination
type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CheckoutResponse carries the created order and the secret the client confirms payment with
type CheckoutResponse struct {
	Order        Order  `json:"order"`
	ClientSecret string `json:"client_secret"`
}

// CancelRequest is the optional body of a cancellation
type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// Order is the public view of an order
type Order struct {
	Number           string        `json:"number"`
	UserID           string        `json:"user_id"`
	Items            []OrderItem   `json:"items"`
	Pricing          Pricing       `json:"pricing"`
	PaymentState     string        `json:"payment_state"`
	PaymentReference string        `json:"payment_reference,omitempty"`
	OrderStatus      string        `json:"order_status"`
	ShippingState    string        `json:"shipping_state"`
	ShippingAddress  Address       `json:"shipping_address"`
	ShippingMethod   string        `json:"shipping_method"`
	FailureReason    string        `json:"failure_reason,omitempty"`
	Cancellation     *Cancellation `json:"cancellation,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// OrderItem is a priced order line
type OrderItem struct {
	ItemID       string `json:"item_id"`
	Title        string `json:"title"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	LineSubtotal int64  `json:"line_subtotal"`
}

// Pricing amounts are in minor currency units
type Pricing struct {
	Subtotal int64  `json:"subtotal"`
	Shipping int64  `json:"shipping"`
	Tax      int64  `json:"tax"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}

type Cancellation struct {
	At     time.Time `json:"at"`
	By     string    `json:"by"`
	Reason string    `json:"reason,omitempty"`
}

// StockConflict tells the client how much of an item is left
type StockConflict struct {
	ItemID    string `json:"item_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// PriceConflict holds the cart re-priced from the catalog
type PriceConflict struct {
	Items []CartLine `json:"items"`
}

type PaymentFailure struct {
	OrderNumber string `json:"order_number,omitempty"`
}

type WebhookResponse struct {
	Outcome string `json:"outcome"`
}

func CheckoutRequestToEntity(userID string, req CheckoutRequest) entities.CheckoutRequest {
	lines := make([]entities.CartLine, len(req.Items))
	for i, l := range req.Items {
		lines[i] = entities.CartLine{ItemID: l.ItemID, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return entities.CheckoutRequest{
		UserID:         userID,
		Lines:          lines,
		Address:        AddressToEntity(req.ShippingAddress),
		ShippingMethod: entities.ShippingMethod(req.ShippingMethod),
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			ItemID:       it.ItemID,
			Title:        it.Title,
			UnitPrice:    it.UnitPrice,
			Quantity:     it.Quantity,
			LineSubtotal: it.LineSubtotal,
		}
	}

	res := Order{
		Number: o.Number,
		UserID: o.UserID,
		Items:  items,
		Pricing: Pricing{
			Subtotal: o.Pricing.Subtotal,
			Shipping: o.Pricing.Shipping,
			Tax:      o.Pricing.Tax,
			Total:    o.Pricing.Total,
			Currency: o.Pricing.Currency,
		},
		PaymentState:     string(o.PaymentState),
		PaymentReference: o.PaymentReference,
		OrderStatus:      string(o.OrderStatus),
		ShippingState:    string(o.ShippingState),
		ShippingAddress:  AddressEntityToJSON(o.ShippingAddress),
		ShippingMethod:   string(o.ShippingMethod),
		FailureReason:    o.FailureReason,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.Cancellation != nil {
		res.Cancellation = &Cancellation{
			At:     o.Cancellation.At,
			By:     o.Cancellation.By,
			Reason: o.Cancellation.Reason,
		}
	}
	return res
}

func CartLinesEntityToJSON(lines []entities.CartLine) []CartLine {
	res := make([]CartLine, len(lines))
	for i, l := range lines {
		res[i] = CartLine{ItemID: l.ItemID, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return res
}
