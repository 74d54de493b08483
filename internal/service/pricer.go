package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type pricer struct {
	catalog Catalog
}

func NewPricer(catalog Catalog) *pricer {
	return &pricer{catalog: catalog}
}

// ValidateAndPrice checks the cart against the catalog. Lines for the same item are
// merged. A price mismatch on any line fails the whole cart with the corrected lines.
func (p *pricer) ValidateAndPrice(ctx context.Context, lines []entities.CartLine) (entities.PricedCart, error) {
	if len(lines) == 0 {
		return entities.PricedCart{}, entities.ErrEmptyCart
	}

	for _, l := range lines {
		if l.Quantity <= 0 {
			return entities.PricedCart{}, fmt.Errorf("%w: item %s", entities.ErrInvalidQuantity, l.ItemID)
		}
	}

	merged := mergeLines(lines)
	ids := make([]string, len(merged))
	for i, l := range merged {
		ids[i] = l.ItemID
	}

	items, err := p.catalog.GetItems(ctx, ids)
	if err != nil {
		return entities.PricedCart{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var (
		cart      entities.PricedCart
		corrected = make([]entities.CartLine, 0, len(merged))
		changed   bool
	)
	for _, l := range merged {
		item, ok := items[l.ItemID]
		if !ok || !item.Sellable() {
			return entities.PricedCart{}, &entities.UnavailableError{ItemID: l.ItemID}
		}
		if item.Price != l.UnitPrice {
			changed = true
		}
		corrected = append(corrected, entities.CartLine{ItemID: l.ItemID, Quantity: l.Quantity, UnitPrice: item.Price})

		if l.Quantity > item.AvailableQuantity {
			return entities.PricedCart{}, &entities.StockError{
				Err:       entities.ErrOutOfStock,
				ItemID:    l.ItemID,
				Requested: l.Quantity,
				Available: item.AvailableQuantity,
			}
		}

		line := entities.OrderItem{
			ItemID:       item.ID,
			Title:        item.Title,
			UnitPrice:    item.Price,
			Quantity:     l.Quantity,
			LineSubtotal: item.Price * int64(l.Quantity),
		}
		cart.Items = append(cart.Items, line)
		cart.Subtotal += line.LineSubtotal
		cart.WeightGrams += item.WeightGrams * l.Quantity
	}

	if changed {
		return entities.PricedCart{}, &entities.PriceChangedError{Lines: corrected}
	}
	return cart, nil
}

// mergeLines sums quantities of repeated items and orders the result by item id, so
// concurrent checkouts lock stock rows in the same order.
func mergeLines(lines []entities.CartLine) []entities.CartLine {
	index := make(map[string]int, len(lines))
	merged := make([]entities.CartLine, 0, len(lines))
	for _, l := range lines {
		if i, ok := index[l.ItemID]; ok {
			merged[i].Quantity += l.Quantity
			if merged[i].UnitPrice != l.UnitPrice {
				// Conflicting client prices can never both match the catalog.
				merged[i].UnitPrice = -1
			}
			continue
		}
		index[l.ItemID] = len(merged)
		merged = append(merged, l)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ItemID < merged[j].ItemID })
	return merged
}
