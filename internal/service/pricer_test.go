package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	mug = entities.StockItem{ID: "sku-mug", Title: "Mug", Price: 500, WeightGrams: 300, AvailableQuantity: 10, Published: true}
	tee = entities.StockItem{ID: "sku-tee", Title: "T-shirt", Price: 1500, WeightGrams: 200, AvailableQuantity: 1, Published: true}
)

func TestPricer_ValidateAndPrice(t *testing.T) {
	type MockBehavior func(catalog *mocks.MockCatalog)

	catalogErr := errors.New("db error")
	items := map[string]entities.StockItem{mug.ID: mug, tee.ID: tee}

	testCases := []struct {
		name         string
		lines        []entities.CartLine
		mockBehavior MockBehavior
		want         entities.PricedCart
		wantErr      error
	}{
		{
			name: "OK",
			lines: []entities.CartLine{
				{ItemID: mug.ID, Quantity: 2, UnitPrice: 500},
				{ItemID: tee.ID, Quantity: 1, UnitPrice: 1500},
			},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetItems(mock.Anything, []string{mug.ID, tee.ID}).Return(items, nil)
			},
			want: entities.PricedCart{
				Items: []entities.OrderItem{
					{ItemID: mug.ID, Title: "Mug", UnitPrice: 500, Quantity: 2, LineSubtotal: 1000},
					{ItemID: tee.ID, Title: "T-shirt", UnitPrice: 1500, Quantity: 1, LineSubtotal: 1500},
				},
				Subtotal:    2500,
				WeightGrams: 800,
			},
		},
		{
			name: "duplicate lines are merged",
			lines: []entities.CartLine{
				{ItemID: mug.ID, Quantity: 1, UnitPrice: 500},
				{ItemID: mug.ID, Quantity: 3, UnitPrice: 500},
			},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetItems(mock.Anything, []string{mug.ID}).Return(items, nil)
			},
			want: entities.PricedCart{
				Items:       []entities.OrderItem{{ItemID: mug.ID, Title: "Mug", UnitPrice: 500, Quantity: 4, LineSubtotal: 2000}},
				Subtotal:    2000,
				WeightGrams: 1200,
			},
		},
		{
			name: "lines are ordered by item id",
			lines: []entities.CartLine{
				{ItemID: tee.ID, Quantity: 1, UnitPrice: 1500},
				{ItemID: mug.ID, Quantity: 1, UnitPrice: 500},
			},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetItems(mock.Anything, []string{mug.ID, tee.ID}).Return(items, nil)
			},
			want: entities.PricedCart{
				Items: []entities.OrderItem{
					{ItemID: mug.ID, Title: "Mug", UnitPrice: 500, Quantity: 1, LineSubtotal: 500},
					{ItemID: tee.ID, Title: "T-shirt", UnitPrice: 1500, Quantity: 1, LineSubtotal: 1500},
				},
				Subtotal:    2000,
				WeightGrams: 500,
			},
		},
		{
			name:         "empty cart",
			lines:        nil,
			mockBehavior: func(catalog *mocks.MockCatalog) {},
			wantErr:      entities.ErrEmptyCart,
		},
		{
			name:         "non-positive quantity",
			lines:        []entities.CartLine{{ItemID: mug.ID, Quantity: 0, UnitPrice: 500}},
			mockBehavior: func(catalog *mocks.MockCatalog) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:  "missing item",
			lines: []entities.CartLine{{ItemID: "sku-gone", Quantity: 1, UnitPrice: 100}},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetItems(mock.Anything, mock.Anything).Return(map[string]entities.StockItem{}, nil)
			},
			wantErr: entities.ErrItemUnavailable,
		},
		{
			name:  "unpublished item",
			lines: []entities.CartLine{{ItemID: mug.ID, Quantity: 1, UnitPrice: 500}},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				hidden := mug
				hidden.Published = false
				catalog.EXPECT().GetItems(mock.Anything, mock.Anything).Return(map[string]entities.StockItem{mug.ID: hidden}, nil)
			},
			wantErr: entities.ErrItemUnavailable,
		},
		{
			name:  "quantity above visible stock",
			lines: []entities.CartLine{{ItemID: tee.ID, Quantity: 2, UnitPrice: 1500}},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetItems(mock.Anything, mock.Anything).Return(items, nil)
			},
			wantErr: entities.ErrOutOfStock,
		},
		{
			name:  "catalog failure",
			lines: []entities.CartLine{{ItemID: mug.ID, Quantity: 1, UnitPrice: 500}},
			mockBehavior: func(catalog *mocks.MockCatalog) {
				catalog.EXPECT().GetItems(mock.Anything, mock.Anything).Return(nil, catalogErr)
			},
			wantErr: catalogErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalog(t)
			tc.mockBehavior(catalog)

			got, err := service.NewPricer(catalog).ValidateAndPrice(context.Background(), tc.lines)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPricer_PriceChangedReturnsCorrectedCart(t *testing.T) {
	catalog := mocks.NewMockCatalog(t)
	catalog.EXPECT().GetItems(mock.Anything, mock.Anything).
		Return(map[string]entities.StockItem{mug.ID: mug, tee.ID: tee}, nil)

	_, err := service.NewPricer(catalog).ValidateAndPrice(context.Background(), []entities.CartLine{
		{ItemID: mug.ID, Quantity: 2, UnitPrice: 450},
		{ItemID: tee.ID, Quantity: 1, UnitPrice: 1500},
	})

	var priceErr *entities.PriceChangedError
	require.ErrorAs(t, err, &priceErr)
	assert.ErrorIs(t, err, entities.ErrPriceChanged)
	assert.Equal(t, []entities.CartLine{
		{ItemID: mug.ID, Quantity: 2, UnitPrice: 500},
		{ItemID: tee.ID, Quantity: 1, UnitPrice: 1500},
	}, priceErr.Lines)
}

func TestPricer_OutOfStockReportsAvailable(t *testing.T) {
	catalog := mocks.NewMockCatalog(t)
	catalog.EXPECT().GetItems(mock.Anything, mock.Anything).
		Return(map[string]entities.StockItem{tee.ID: tee}, nil)

	_, err := service.NewPricer(catalog).ValidateAndPrice(context.Background(), []entities.CartLine{
		{ItemID: tee.ID, Quantity: 3, UnitPrice: 1500},
	})

	var stockErr *entities.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 3, stockErr.Requested)
}
