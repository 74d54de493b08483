package shipping_test

import (
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/shipping"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_Cost(t *testing.T) {
	calc := shipping.NewCalculator(config.Shipping{
		StandardBase:  500,
		ExpressBase:   1500,
		PerKilogram:   100,
		FreeThreshold: 10000,
	})
	us := entities.Address{Country: "US"}

	testCases := []struct {
		name     string
		subtotal int64
		weight   int
		dest     entities.Address
		method   entities.ShippingMethod
		want     int64
		wantErr  error
	}{
		{name: "standard light parcel", subtotal: 2000, weight: 300, dest: us, method: entities.ShippingStandard, want: 600},
		{name: "standard partial kilograms round up", subtotal: 2000, weight: 2001, dest: us, method: entities.ShippingStandard, want: 800},
		{name: "standard free above threshold", subtotal: 10000, weight: 5000, dest: us, method: entities.ShippingStandard, want: 0},
		{name: "express never free", subtotal: 20000, weight: 1000, dest: us, method: entities.ShippingExpress, want: 1600},
		{name: "weightless", subtotal: 100, weight: 0, dest: us, method: entities.ShippingExpress, want: 1500},
		{name: "unknown method", subtotal: 100, dest: us, method: "drone", wantErr: entities.ErrInvalidShipping},
		{name: "no destination", subtotal: 100, method: entities.ShippingExpress, wantErr: entities.ErrInvalidAddress},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Cost(tc.subtotal, tc.weight, tc.dest, tc.method)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTaxTable_Tax(t *testing.T) {
	table := shipping.NewTaxTable(map[string]int64{"us-ca": 725, "DE": 1900})

	assert.Equal(t, int64(725), table.Tax(10000, "US-CA"))
	assert.Equal(t, int64(1900), table.Tax(10000, "DE-BE"))
	assert.Equal(t, int64(0), table.Tax(10000, "US-TX"))
	assert.Equal(t, int64(1), table.Tax(14, "US-CA"), "rounds half up")
	assert.Equal(t, int64(0), table.Tax(0, "DE"))
}
