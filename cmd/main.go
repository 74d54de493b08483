package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/checkout-service/internal/app"
	"github.com/SergeyBogomolovv/checkout-service/internal/cart"
	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/dedup"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/SergeyBogomolovv/checkout-service/internal/notify"
	"github.com/SergeyBogomolovv/checkout-service/internal/payment"
	"github.com/SergeyBogomolovv/checkout-service/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-service/internal/redisx"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/internal/shipping"
	"github.com/SergeyBogomolovv/checkout-service/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v81"
)

// @title           Checkout Service API
// @version         1.0
// @description     Checkout, order and payment webhook API
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.AutoMigrate {
		panicIfErr("failed to migrate db", postgres.Migrate(db))
		logger.Info("migrations applied")
	}

	rdb, err := redisx.New(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	txManager := trm.NewManager(db)
	orderRepo := repo.NewOrderRepo(db)
	ledger := repo.NewStockLedger(db)
	catalog := repo.NewCatalogRepo(db)
	eventLog := repo.NewEventLog(db)

	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	deduper := dedup.NewRedisDeduper(rdb, "payments", conf.Redis.DedupTTL)
	carts := cart.NewCartStore(rdb)
	notifier := notify.NewKafkaNotifier(logger, conf.Kafka)

	gateway := payment.NewGateway(conf.Stripe.SecretKey, stripe.GetBackend(stripe.APIBackend))
	verifier := payment.NewVerifier(conf.Stripe.WebhookSecret, conf.Stripe.WebhookTolerance)

	checkoutService := service.NewCheckoutService(
		logger, txManager, catalog, ledger, orderRepo, gateway, carts,
		shipping.NewCalculator(conf.Shipping),
		shipping.NewTaxTable(conf.Shipping.TaxRates),
		service.CheckoutConfig{TxTimeout: conf.Checkout.TxTimeout, Currency: conf.Stripe.Currency},
	)
	orderService := service.NewOrderService(logger, txManager, orderRepo, ledger, gateway, notifier, orderCache)
	paymentEvents := service.NewPaymentEventService(
		logger, txManager, verifier, orderRepo, ledger, eventLog, deduper, gateway, notifier, orderCache,
	)
	reconciler := service.NewReconciler(logger, orderRepo, orderService, service.ReconcileConfig{
		Interval:   conf.Checkout.ReconcileInterval,
		PendingTTL: conf.Checkout.PendingTTL,
		Batch:      conf.Checkout.ReconcileBatch,
	})

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, checkoutService, orderService)
	webhookHandler := handler.NewWebhookHandler(logger, paymentEvents)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, paymentEvents)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, webhookHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, notifier, reconciler)
	app.SetClosers(notifier)

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case err := <-app.Errors():
		logger.Error("shutting down after server failure", slog.Any("error", err))
		stop()
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
