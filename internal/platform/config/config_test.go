package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 2*time.Second, cfg.EventPublishTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("JWT_EXPIRY_DURATION", "2h")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("EVENT_PUBLISH_TIMEOUT", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 250*time.Millisecond, cfg.EventPublishTimeout)
}

func TestLoadConfig_UnknownBackendFallsBack(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
}
