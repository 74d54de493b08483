package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Stripe Stripe `validate:"required"`

	Checkout Checkout `validate:"required"`

	Shipping Shipping `validate:"required"`

	Cache Cache `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	PaymentTopic      string `validate:"required"`
	NotificationTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
	BufferSize    int           `validate:"gte=1"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	AutoMigrate bool
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int           `validate:"gte=0"`
	DedupTTL time.Duration `validate:"gt=0"`
}

type Stripe struct {
	SecretKey        string        `validate:"required"`
	WebhookSecret    string        `validate:"required"`
	WebhookTolerance time.Duration `validate:"gt=0"`
	Currency         string        `validate:"required,len=3,lowercase"`
}

type Checkout struct {
	TxTimeout         time.Duration `validate:"gt=0"`
	ReconcileInterval time.Duration `validate:"gt=0"`
	PendingTTL        time.Duration `validate:"gt=0"`
	ReconcileBatch    int           `validate:"gte=1"`
}

// Shipping holds rate tables in minor currency units; tax rates are in basis points.
type Shipping struct {
	StandardBase  int64            `validate:"gte=0"`
	ExpressBase   int64            `validate:"gte=0"`
	PerKilogram   int64            `validate:"gte=0"`
	FreeThreshold int64            `validate:"gte=0"`
	TaxRates      map[string]int64 `validate:"dive,keys,required,endkeys,gte=0,lte=10000"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:           env("KAFKA_GROUP_ID", "checkout-service"),
			Brokers:           strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			PaymentTopic:      env("KAFKA_PAYMENT_TOPIC", "payment-events"),
			NotificationTopic: env("KAFKA_NOTIFICATION_TOPIC", "order-notifications"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
			BufferSize:    envInt("KAFKA_NOTIFY_BUFFER", 1024),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "checkout"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			AutoMigrate: envBool("POSTGRES_AUTO_MIGRATE", true),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
			DedupTTL: envDuration("REDIS_DEDUP_TTL", 48*time.Hour),
		},

		Stripe: Stripe{
			SecretKey:        env("STRIPE_SECRET_KEY", ""),
			WebhookSecret:    env("STRIPE_WEBHOOK_SECRET", ""),
			WebhookTolerance: envDuration("STRIPE_WEBHOOK_TOLERANCE", 5*time.Minute),
			Currency:         env("CURRENCY", "usd"),
		},

		Checkout: Checkout{
			TxTimeout:         envDuration("CHECKOUT_TX_TIMEOUT", 5*time.Second),
			ReconcileInterval: envDuration("RECONCILE_INTERVAL", time.Minute),
			PendingTTL:        envDuration("RECONCILE_PENDING_TTL", 15*time.Minute),
			ReconcileBatch:    envInt("RECONCILE_BATCH", 100),
		},

		Shipping: Shipping{
			StandardBase:  int64(envInt("SHIPPING_STANDARD_BASE", 500)),
			ExpressBase:   int64(envInt("SHIPPING_EXPRESS_BASE", 1500)),
			PerKilogram:   int64(envInt("SHIPPING_PER_KG", 100)),
			FreeThreshold: int64(envInt("SHIPPING_FREE_THRESHOLD", 10000)),
			TaxRates:      envRates("TAX_RATES", "US-CA:725,US-NY:400,DE:1900"),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 30*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

// envRates parses "JURISDICTION:basis_points,..." pairs; malformed pairs are skipped.
func envRates(key string, fallback string) map[string]int64 {
	rates := make(map[string]int64)
	for _, pair := range strings.Split(env(key, fallback), ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || k == "" {
			continue
		}
		bp, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		rates[strings.ToUpper(k)] = bp
	}
	return rates
}
