package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var productColumns = []string{
	"id", "title", "price", "weight_grams", "available_quantity", "sold_count", "published", "deleted",
}

// stockLedger mutates per-item counters with single conditional statements.
// Callers run it inside a trm transaction to make several mutations atomic.
type stockLedger struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewStockLedger(db *sqlx.DB) *stockLedger {
	return &stockLedger{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *stockLedger) Reserve(ctx context.Context, itemID string, qty int) error {
	if qty <= 0 {
		return entities.ErrInvalidQuantity
	}

	query, args := r.qb.Update("products").
		Set("available_quantity", sq.Expr("available_quantity - ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID, "published": true, "deleted": false}).
		Where(sq.GtOrEq{"available_quantity": qty}).
		MustSql()

	ok, err := r.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if ok {
		return nil
	}
	return r.classify(ctx, itemID, qty)
}

func (r *stockLedger) Release(ctx context.Context, itemID string, qty int) error {
	if qty <= 0 {
		return entities.ErrInvalidQuantity
	}

	query, args := r.qb.Update("products").
		Set("available_quantity", sq.Expr("available_quantity + ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	ok, err := r.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	if !ok {
		return &entities.UnavailableError{ItemID: itemID}
	}
	return nil
}

func (r *stockLedger) CommitSale(ctx context.Context, itemID string, qty int) error {
	if qty <= 0 {
		return entities.ErrInvalidQuantity
	}

	query, args := r.qb.Update("products").
		Set("sold_count", sq.Expr("sold_count + ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	ok, err := r.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to commit sale: %w", err)
	}
	if !ok {
		return &entities.UnavailableError{ItemID: itemID}
	}
	return nil
}

func (r *stockLedger) RevertSale(ctx context.Context, itemID string, qty int) error {
	if qty <= 0 {
		return entities.ErrInvalidQuantity
	}

	query, args := r.qb.Update("products").
		Set("sold_count", sq.Expr("sold_count - ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID}).
		Where(sq.GtOrEq{"sold_count": qty}).
		MustSql()

	ok, err := r.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to revert sale: %w", err)
	}
	if ok {
		return nil
	}

	p, err := r.product(ctx, itemID)
	if err != nil {
		return err
	}
	return &entities.StockError{Err: entities.ErrInsufficientStock, ItemID: itemID, Requested: qty, Available: p.SoldCount}
}

// classify explains why a reservation matched no row.
func (r *stockLedger) classify(ctx context.Context, itemID string, qty int) error {
	p, err := r.product(ctx, itemID)
	if err != nil {
		return err
	}
	if !p.Published || p.Deleted {
		return &entities.UnavailableError{ItemID: itemID}
	}
	return &entities.StockError{
		Err:       entities.ErrInsufficientStock,
		ItemID:    itemID,
		Requested: qty,
		Available: p.AvailableQuantity,
	}
}

func (r *stockLedger) product(ctx context.Context, itemID string) (Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": itemID}).
		MustSql()

	var p Product
	err := trm.Conn(ctx, r.db).GetContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, &entities.UnavailableError{ItemID: itemID}
	}
	if err != nil {
		return Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (r *stockLedger) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type catalogRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetItems reads the listed items in one query. Missing ids are absent from the result.
func (r *catalogRepo) GetItems(ctx context.Context, ids []string) (map[string]entities.StockItem, error) {
	result := make(map[string]entities.StockItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var products []Product
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	for _, p := range products {
		result[p.ID] = ProductToEntity(p)
	}
	return result, nil
}
