package shipping

import (
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type Calculator struct {
	standardBase  int64
	expressBase   int64
	perKilogram   int64
	freeThreshold int64
}

func NewCalculator(cfg config.Shipping) *Calculator {
	return &Calculator{
		standardBase:  cfg.StandardBase,
		expressBase:   cfg.ExpressBase,
		perKilogram:   cfg.PerKilogram,
		freeThreshold: cfg.FreeThreshold,
	}
}

// Cost returns the shipping charge in minor units. Standard shipping is free once
// the subtotal reaches the threshold; started kilograms are charged in full.
func (c *Calculator) Cost(subtotal int64, weightGrams int, destination entities.Address, method entities.ShippingMethod) (int64, error) {
	var base int64
	switch method {
	case entities.ShippingStandard:
		if c.freeThreshold > 0 && subtotal >= c.freeThreshold {
			return 0, nil
		}
		base = c.standardBase
	case entities.ShippingExpress:
		base = c.expressBase
	default:
		return 0, entities.ErrInvalidShipping
	}

	if destination.Country == "" {
		return 0, entities.ErrInvalidAddress
	}

	kilograms := int64((weightGrams + 999) / 1000)
	return base + kilograms*c.perKilogram, nil
}

// TaxTable holds rates in basis points keyed by "CC" or "CC-REGION".
type TaxTable struct {
	rates map[string]int64
}

func NewTaxTable(rates map[string]int64) *TaxTable {
	normalized := make(map[string]int64, len(rates))
	for k, v := range rates {
		normalized[strings.ToUpper(k)] = v
	}
	return &TaxTable{rates: normalized}
}

// Tax rounds half up. Jurisdictions without a region rate fall back to the country rate.
func (t *TaxTable) Tax(subtotal int64, jurisdiction string) int64 {
	rate, ok := t.rates[jurisdiction]
	if !ok {
		country, _, _ := strings.Cut(jurisdiction, "-")
		rate = t.rates[country]
	}
	return (subtotal*rate + 5000) / 10000
}
