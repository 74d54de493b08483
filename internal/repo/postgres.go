package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

type orderRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	a := o.ShippingAddress
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.Number, o.UserID, o.Pricing.Subtotal, o.Pricing.Shipping, o.Pricing.Tax, o.Pricing.Total, o.Pricing.Currency,
			o.PaymentState, nullString(o.PaymentReference), o.OrderStatus, o.ShippingState, o.StockState,
			o.ShippingMethod, a.Name, a.Line1, nullString(a.Line2), a.City, nullString(a.Region),
			a.PostalCode, a.Country, nullString(o.FailureReason), nil, nil,
			nil, o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	conn := trm.Conn(ctx, r.db)
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: duplicate order %s", entities.ErrInvalidOrder, o.Number)
		}
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "item_id", "title", "unit_price", "quantity", "line_subtotal")
	for i, it := range o.Items {
		q = q.Values(o.ID, i, it.ItemID, it.Title, it.UnitPrice, it.Quantity, it.LineSubtotal)
	}

	query, args = q.MustSql()
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// SetPaymentReference stores the processor reference once. A second call for the
// same order is a no-op when the reference matches and ErrInvalidTransition otherwise.
func (r *orderRepo) SetPaymentReference(ctx context.Context, orderID, ref string) error {
	query, args := r.qb.Update("orders").
		Set("payment_reference", ref).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "payment_reference": nil}).
		MustSql()

	conn := trm.Conn(ctx, r.db)
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set payment reference: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to set payment reference: %w", err)
	} else if n > 0 {
		return nil
	}

	query, args = r.qb.Select("payment_reference").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var current sql.NullString
	err = conn.GetContext(ctx, &current, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get payment reference: %w", err)
	}
	if current.String == ref {
		return nil
	}
	return fmt.Errorf("%w: order %s already has a payment reference", entities.ErrInvalidTransition, orderID)
}

func (r *orderRepo) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"number": number})
}

func (r *orderRepo) GetOrderByPaymentReference(ctx context.Context, ref string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"payment_reference": ref})
}

// Transition writes t only if the order still matches its precondition.
// The boolean is false when another writer got there first.
func (r *orderRepo) Transition(ctx context.Context, orderID string, t entities.Transition) (bool, error) {
	where := sq.Eq{
		"id":            orderID,
		"payment_state": t.FromPayment,
		"stock_state":   t.FromStock,
	}
	if t.FromStatus != "" {
		where["order_status"] = t.FromStatus
	}

	q := r.qb.Update("orders").
		Set("payment_state", t.Payment).
		Set("order_status", t.Status).
		Set("shipping_state", t.Shipping).
		Set("stock_state", t.Stock).
		Set("updated_at", sq.Expr("now()")).
		Where(where)

	if t.FailureReason != "" {
		q = q.Set("failure_reason", t.FailureReason)
	}
	if c := t.Cancellation; c != nil {
		q = q.Set("cancelled_at", c.At).
			Set("cancelled_by", c.By).
			Set("cancellation_reason", nullString(c.Reason))
	}

	query, args := q.MustSql()
	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to transition order: %w", err)
	}
	return n > 0, nil
}

// ListStalePending returns pending orders created before the cutoff that never got a payment reference.
func (r *orderRepo) ListStalePending(ctx context.Context, before time.Time, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{
			"payment_state":     entities.PaymentPending,
			"order_status":      entities.OrderPending,
			"payment_reference": nil,
		}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at").
		Limit(uint64(limit)).
		MustSql()

	conn := trm.Conn(ctx, r.db)

	var orders []Order
	if err := conn.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	itemsMap, err := r.items(ctx, conn, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

func (r *orderRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	conn := trm.Conn(ctx, r.db)

	var order Order
	err := conn.GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	itemsMap, err := r.items(ctx, conn, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, itemsMap[order.ID]), nil
}

func (r *orderRepo) items(ctx context.Context, conn trm.Querier, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select("order_id", "position", "item_id", "title", "unit_price", "quantity", "line_subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	itemsMap := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}
	return itemsMap, nil
}

type eventLog struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewEventLog(db *sqlx.DB) *eventLog {
	return &eventLog{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// MarkProcessed records the event id. It returns false when the id was recorded before.
func (r *eventLog) MarkProcessed(ctx context.Context, evt entities.PaymentEvent) (bool, error) {
	query, args := r.qb.Insert("payment_events").
		Columns("event_id", "event_type", "payment_reference", "received_at").
		Values(evt.ID, evt.ExternalType, nullString(evt.Reference), evt.ReceivedAt).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to save payment event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to save payment event: %w", err)
	}
	return n > 0, nil
}
