package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}, Worker: &WorkerConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Shipping)
	assert.Equal(t, 5, cfg.Shipping.MinDeliveryDays)
	assert.Equal(t, 10, cfg.Shipping.MaxDeliveryDays)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, time.Hour, cfg.Worker.OverdueWindow)
}

func TestApplyDefaults_KeepsWindowOrdered(t *testing.T) {
	cfg := &Config{Shipping: &ShippingConfig{MinDeliveryDays: 12, MaxDeliveryDays: 3}}

	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Shipping.MinDeliveryDays)
	assert.Equal(t, 12, cfg.Shipping.MaxDeliveryDays)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "access"
		cfg.SecretKey.Refresh = "refresh"

		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := valid()
		cfg.SecretKey.Refresh = " "
		assert.Error(t, cfg.Validate())
	})

	t.Run("shared secret", func(t *testing.T) {
		cfg := valid()
		cfg.SecretKey.Refresh = cfg.SecretKey.Access
		assert.Error(t, cfg.Validate())
	})

	t.Run("bootstrap without password", func(t *testing.T) {
		cfg := valid()
		cfg.Bootstrap = &BootstrapConfig{AdminEmail: "admin@example.com"}
		assert.Error(t, cfg.Validate())
	})
}
