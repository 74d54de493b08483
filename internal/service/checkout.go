package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type CheckoutConfig struct {
	TxTimeout time.Duration
	Currency  string
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	validate  *validator.Validate
	pricer    *pricer
	ledger    StockLedger
	orders    OrderRepo
	gateway   PaymentGateway
	carts     CartStore
	shipping  ShippingCalculator
	tax       TaxCalculator
	cfg       CheckoutConfig
	now       func() time.Time
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	catalog Catalog,
	ledger StockLedger,
	orders OrderRepo,
	gateway PaymentGateway,
	carts CartStore,
	shipping ShippingCalculator,
	tax TaxCalculator,
	cfg CheckoutConfig,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		validate:  validator.New(),
		pricer:    NewPricer(catalog),
		ledger:    ledger,
		orders:    orders,
		gateway:   gateway,
		carts:     carts,
		shipping:  shipping,
		tax:       tax,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Checkout prices the cart, reserves stock and creates the order in one transaction,
// then requests payment. A request without lines checks out the stored cart. When the
// payment request fails the created order is returned together with ErrPaymentRequestFailed.
func (s *checkoutService) Checkout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error) {
	if err := s.validate.Struct(req.Address); err != nil {
		return entities.CheckoutResult{}, fmt.Errorf("%w: %w", entities.ErrInvalidAddress, err)
	}
	if req.ShippingMethod != entities.ShippingStandard && req.ShippingMethod != entities.ShippingExpress {
		return entities.CheckoutResult{}, entities.ErrInvalidShipping
	}

	if len(req.Lines) == 0 {
		lines, err := s.carts.Lines(ctx, req.UserID)
		if err != nil {
			return entities.CheckoutResult{}, fmt.Errorf("failed to read cart: %w", err)
		}
		req.Lines = lines
	}

	order, err := s.placeOrder(ctx, req)
	if err != nil {
		return entities.CheckoutResult{}, err
	}

	logger := s.logger.With(slog.String("order", order.Number))
	logger.Info("order created", slog.Int64("total", order.Pricing.Total), slog.Int("lines", len(order.Items)))

	intent, err := s.gateway.CreatePaymentRequest(ctx, entities.PaymentRequest{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		UserID:      order.UserID,
		Amount:      order.Pricing.Total,
		Currency:    order.Pricing.Currency,
	})
	if err != nil {
		logger.Error("failed to create payment request", slog.Any("error", err))
		return entities.CheckoutResult{Order: order}, fmt.Errorf("%w: %w", entities.ErrPaymentRequestFailed, err)
	}

	err = utils.Retry(ctx, utils.DefaultRetry, func() error {
		return s.orders.SetPaymentReference(ctx, order.ID, intent.Reference)
	}, entities.ErrInvalidTransition, entities.ErrOrderNotFound)
	if err != nil {
		logger.Error("failed to save payment reference", slog.String("reference", intent.Reference), slog.Any("error", err))
		return entities.CheckoutResult{Order: order}, fmt.Errorf("%w: %w", entities.ErrPaymentRequestFailed, err)
	}
	order.PaymentReference = intent.Reference

	if err := s.carts.Clear(ctx, req.UserID); err != nil {
		logger.Warn("failed to clear cart", slog.String("user", req.UserID), slog.Any("error", err))
	}

	return entities.CheckoutResult{Order: order, ClientSecret: intent.ClientSecret}, nil
}

func (s *checkoutService) placeOrder(ctx context.Context, req entities.CheckoutRequest) (entities.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.TxTimeout)
	defer cancel()

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.pricer.ValidateAndPrice(ctx, req.Lines)
		if err != nil {
			return err
		}

		shippingCost, err := s.shipping.Cost(cart.Subtotal, cart.WeightGrams, req.Address, req.ShippingMethod)
		if err != nil {
			return err
		}
		tax := s.tax.Tax(cart.Subtotal, req.Address.Jurisdiction())

		for _, it := range cart.Items {
			if err := s.ledger.Reserve(ctx, it.ItemID, it.Quantity); err != nil {
				return err
			}
		}

		pricing := entities.Pricing{
			Subtotal: cart.Subtotal,
			Shipping: shippingCost,
			Tax:      tax,
			Total:    cart.Subtotal + shippingCost + tax,
			Currency: s.cfg.Currency,
		}
		order = entities.NewOrder(req.UserID, cart.Items, pricing, req.Address, req.ShippingMethod, s.now())

		return s.orders.CreateOrder(ctx, order)
	})
	if errors.Is(err, context.DeadlineExceeded) {
		return entities.Order{}, fmt.Errorf("checkout timed out: %w", err)
	}
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}
