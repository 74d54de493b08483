package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type Product struct {
	ID                string `db:"id"`
	Title             string `db:"title"`
	Price             int64  `db:"price"`
	WeightGrams       int    `db:"weight_grams"`
	AvailableQuantity int    `db:"available_quantity"`
	SoldCount         int    `db:"sold_count"`
	Published         bool   `db:"published"`
	Deleted           bool   `db:"deleted"`
}

type Order struct {
	ID                 string         `db:"id"`
	Number             string         `db:"number"`
	UserID             string         `db:"user_id"`
	Subtotal           int64          `db:"subtotal"`
	Shipping           int64          `db:"shipping"`
	Tax                int64          `db:"tax"`
	Total              int64          `db:"total"`
	Currency           string         `db:"currency"`
	PaymentState       string         `db:"payment_state"`
	PaymentReference   sql.NullString `db:"payment_reference"`
	OrderStatus        string         `db:"order_status"`
	ShippingState      string         `db:"shipping_state"`
	StockState         string         `db:"stock_state"`
	ShippingMethod     string         `db:"shipping_method"`
	ShipName           string         `db:"ship_name"`
	ShipLine1          string         `db:"ship_line1"`
	ShipLine2          sql.NullString `db:"ship_line2"`
	ShipCity           string         `db:"ship_city"`
	ShipRegion         sql.NullString `db:"ship_region"`
	ShipPostalCode     string         `db:"ship_postal_code"`
	ShipCountry        string         `db:"ship_country"`
	FailureReason      sql.NullString `db:"failure_reason"`
	CancelledAt        sql.NullTime   `db:"cancelled_at"`
	CancelledBy        sql.NullString `db:"cancelled_by"`
	CancellationReason sql.NullString `db:"cancellation_reason"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type Item struct {
	OrderID      string `db:"order_id"`
	Position     int    `db:"position"`
	ItemID       string `db:"item_id"`
	Title        string `db:"title"`
	UnitPrice    int64  `db:"unit_price"`
	Quantity     int    `db:"quantity"`
	LineSubtotal int64  `db:"line_subtotal"`
}

var orderColumns = []string{
	"id", "number", "user_id", "subtotal", "shipping", "tax", "total", "currency",
	"payment_state", "payment_reference", "order_status", "shipping_state", "stock_state",
	"shipping_method", "ship_name", "ship_line1", "ship_line2", "ship_city", "ship_region",
	"ship_postal_code", "ship_country", "failure_reason", "cancelled_at", "cancelled_by",
	"cancellation_reason", "created_at", "updated_at",
}

func ProductToEntity(p Product) entities.StockItem {
	return entities.StockItem{
		ID:                p.ID,
		Title:             p.Title,
		Price:             p.Price,
		WeightGrams:       p.WeightGrams,
		AvailableQuantity: p.AvailableQuantity,
		SoldCount:         p.SoldCount,
		Published:         p.Published,
		Deleted:           p.Deleted,
	}
}

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		ItemID:       i.ItemID,
		Title:        i.Title,
		UnitPrice:    i.UnitPrice,
		Quantity:     i.Quantity,
		LineSubtotal: i.LineSubtotal,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:     o.ID,
		Number: o.Number,
		UserID: o.UserID,
		Pricing: entities.Pricing{
			Subtotal: o.Subtotal,
			Shipping: o.Shipping,
			Tax:      o.Tax,
			Total:    o.Total,
			Currency: o.Currency,
		},
		PaymentState:     entities.PaymentState(o.PaymentState),
		PaymentReference: nullStringToString(o.PaymentReference),
		OrderStatus:      entities.OrderStatus(o.OrderStatus),
		ShippingState:    entities.ShippingState(o.ShippingState),
		StockState:       entities.StockState(o.StockState),
		ShippingMethod:   entities.ShippingMethod(o.ShippingMethod),
		ShippingAddress: entities.Address{
			Name:       o.ShipName,
			Line1:      o.ShipLine1,
			Line2:      nullStringToString(o.ShipLine2),
			City:       o.ShipCity,
			Region:     nullStringToString(o.ShipRegion),
			PostalCode: o.ShipPostalCode,
			Country:    o.ShipCountry,
		},
		FailureReason: nullStringToString(o.FailureReason),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if o.CancelledAt.Valid {
		order.Cancellation = &entities.Cancellation{
			At:     o.CancelledAt.Time,
			By:     nullStringToString(o.CancelledBy),
			Reason: nullStringToString(o.CancellationReason),
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
