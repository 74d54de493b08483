package repo_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/checkout-service/internal/shipping"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var shipTo = entities.Address{
	Name: "Jane Doe", Line1: "1 Main St", City: "Springfield", Region: "CA", PostalCode: "90000", Country: "US",
}

// store wires the services over a real database. Only the processor, the cart,
// the dedup cache and the notifier are mocked.
type store struct {
	t        *testing.T
	db       *sqlx.DB
	checkout interface {
		Checkout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error)
	}
	events interface {
		HandleNotification(ctx context.Context, payload []byte, signature string) (service.Outcome, error)
	}
	verifier *mocks.MockVerifier
	gateway  *mocks.MockPaymentGateway
}

func newStore(t *testing.T) *store {
	db := testDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := trm.NewManager(db)
	orders := repo.NewOrderRepo(db)
	ledger := repo.NewStockLedger(db)

	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().CreatePaymentRequest(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entities.PaymentRequest) (entities.PaymentIntent, error) {
			ref := "pi_" + uuid.NewString()
			return entities.PaymentIntent{Reference: ref, ClientSecret: ref + "_secret"}, nil
		}).Maybe()
	carts := mocks.NewMockCartStore(t)
	carts.EXPECT().Clear(mock.Anything, mock.Anything).Return(nil).Maybe()
	verifier := mocks.NewMockVerifier(t)
	dedup := mocks.NewMockDeduper(t)
	dedup.EXPECT().Seen(mock.Anything, mock.Anything).Return(false, nil).Maybe()
	dedup.EXPECT().Remember(mock.Anything, mock.Anything).Return(nil).Maybe()
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything).Return().Maybe()

	return &store{
		t:  t,
		db: db,
		checkout: service.NewCheckoutService(
			logger, txManager, repo.NewCatalogRepo(db), ledger, orders, gateway, carts,
			shipping.NewCalculator(config.Shipping{StandardBase: 500, ExpressBase: 1500}),
			shipping.NewTaxTable(nil),
			service.CheckoutConfig{TxTimeout: 5 * time.Second, Currency: "usd"},
		),
		events: service.NewPaymentEventService(
			logger, txManager, verifier, orders, ledger, repo.NewEventLog(db), dedup, gateway, notifier,
			cache.NewLRUCache(10, time.Minute),
		),
		verifier: verifier,
		gateway:  gateway,
	}
}

func (s *store) seed(qty int) string { return seedProduct(s.t, s.db, 1000, qty) }

func (s *store) read(id string) entities.StockItem { return product(s.t, s.db, id) }

func (s *store) buy(ctx context.Context, itemID string, qty int) (entities.CheckoutResult, error) {
	return s.checkout.Checkout(ctx, entities.CheckoutRequest{
		UserID:         "user-1",
		Lines:          []entities.CartLine{{ItemID: itemID, Quantity: qty, UnitPrice: 1000}},
		Address:        shipTo,
		ShippingMethod: entities.ShippingStandard,
	})
}

// deliver feeds a verified processor event through the notification entry point.
func (s *store) deliver(t *testing.T, evt entities.PaymentEvent) service.Outcome {
	t.Helper()
	s.verifier.EXPECT().ParseEvent(mock.Anything, evt.ID).Return(evt, nil).Once()
	outcome, err := s.events.HandleNotification(context.Background(), []byte("{}"), evt.ID)
	require.NoError(t, err)
	return outcome
}

func paymentEvent(typ entities.PaymentEventType, ref string) entities.PaymentEvent {
	return entities.PaymentEvent{ID: "evt_" + uuid.NewString(), Type: typ, Reference: ref, Reason: "card declined"}
}

func TestCheckoutFlow_LastItemFailedPaymentFreesStock(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	id := s.seed(1)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []entities.CheckoutResult
		losers  int
	)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.buy(ctx, id, 1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, res)
				return
			}
			var stockErr *entities.StockError
			if assert.ErrorAs(t, err, &stockErr) {
				losers++
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, 1, losers)
	winner := winners[0].Order
	assert.Equal(t, entities.PaymentPending, winner.PaymentState)
	assert.Equal(t, 0, s.read(id).AvailableQuantity)

	s.gateway.EXPECT().CancelPaymentRequest(mock.Anything, winner.PaymentReference).Return(nil).Once()
	outcome := s.deliver(t, paymentEvent(entities.EventPaymentFailed, winner.PaymentReference))
	assert.Equal(t, service.OutcomeApplied, outcome)
	assert.Equal(t, 1, s.read(id).AvailableQuantity)

	_, err := s.buy(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.read(id).AvailableQuantity)
}

func TestCheckoutFlow_PaymentSucceededCommitsSaleOnce(t *testing.T) {
	s := newStore(t)
	id := s.seed(5)

	res, err := s.buy(context.Background(), id, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, s.read(id).AvailableQuantity)

	succeeded := paymentEvent(entities.EventPaymentSucceeded, res.Order.PaymentReference)
	assert.Equal(t, service.OutcomeApplied, s.deliver(t, succeeded))

	item := s.read(id)
	assert.Equal(t, 3, item.AvailableQuantity)
	assert.Equal(t, 2, item.SoldCount)

	assert.Equal(t, service.OutcomeDuplicate, s.deliver(t, succeeded))

	again := paymentEvent(entities.EventPaymentSucceeded, res.Order.PaymentReference)
	assert.Equal(t, service.OutcomeStale, s.deliver(t, again))

	item = s.read(id)
	assert.Equal(t, 3, item.AvailableQuantity)
	assert.Equal(t, 2, item.SoldCount)
}

func TestCheckoutFlow_OppositeLineOrdersDoNotConflict(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	first := s.seed(100)
	second := s.seed(100)

	const buyers = 20
	var wg sync.WaitGroup
	for i := range buyers {
		lines := []entities.CartLine{
			{ItemID: first, Quantity: 1, UnitPrice: 1000},
			{ItemID: second, Quantity: 1, UnitPrice: 1000},
		}
		if i%2 == 1 {
			lines[0], lines[1] = lines[1], lines[0]
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.checkout.Checkout(ctx, entities.CheckoutRequest{
				UserID: "user-1", Lines: lines, Address: shipTo, ShippingMethod: entities.ShippingStandard,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100-buyers, s.read(first).AvailableQuantity)
	assert.Equal(t, 100-buyers, s.read(second).AvailableQuantity)
}
