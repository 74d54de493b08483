package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("CHECKOUT_TX_TIMEOUT", "2s")
	t.Setenv("TAX_RATES", "us-ca:725, broken ,DE:x,FR:2000")

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, 2*time.Second, conf.Checkout.TxTimeout)
	assert.Equal(t, map[string]int64{"US-CA": 725, "FR": 2000}, conf.Shipping.TaxRates)
	assert.Equal(t, "usd", conf.Stripe.Currency)
}

func TestValidateRejectsMissingSecrets(t *testing.T) {
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	assert.Error(t, New().Validate())
}
