package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrder         = errors.New("invalid order data")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidAddress       = errors.New("invalid shipping address")
	ErrInvalidShipping      = errors.New("unsupported shipping method")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrOutOfStock           = errors.New("out of stock")
	ErrItemUnavailable      = errors.New("item unavailable")
	ErrPriceChanged         = errors.New("price changed")
	ErrInvalidSignature     = errors.New("invalid notification signature")
	ErrMalformedEvent       = errors.New("malformed payment event")
	ErrPaymentRequestFailed = errors.New("payment request failed")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidTransition    = errors.New("transition not allowed in current state")
)

// StockError reports a quantity that cannot be satisfied, with the amount that was available.
// Err is ErrInsufficientStock for ledger rejections and ErrOutOfStock for the pre-check.
type StockError struct {
	Err       error
	ItemID    string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: item %s requested %d, available %d", e.Err, e.ItemID, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error { return e.Err }

type UnavailableError struct {
	ItemID string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrItemUnavailable, e.ItemID)
}

func (e *UnavailableError) Unwrap() error { return ErrItemUnavailable }

// PriceChangedError carries the cart re-priced from the catalog so the client can re-confirm it.
type PriceChangedError struct {
	Lines []CartLine
}

func (e *PriceChangedError) Error() string {
	return fmt.Sprintf("%s for %d line(s)", ErrPriceChanged, len(e.Lines))
}

func (e *PriceChangedError) Unwrap() error { return ErrPriceChanged }
