package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, StrategyStatic, cfg.Strategy)
	assert.Equal(t, "unknown_district", cfg.DefaultDistrict)
	assert.Equal(t, "district-", cfg.TopicPrefix)

	assert.Equal(t, "https://nominatim.openstreetmap.org/reverse", cfg.NominatimBaseURL)
	assert.Equal(t, "sos-alert-service/1.0", cfg.NominatimUserAgent)
	assert.Equal(t, 2500*time.Millisecond, cfg.NominatimTimeout)
	assert.Equal(t, 12*time.Hour, cfg.GeocodeCacheTTL)
	assert.Equal(t, 1000, cfg.GeocodeCacheMax)

	assert.Equal(t, DispatcherLog, cfg.Dispatcher)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("RESOLVER_STRATEGY", "nominatim")
	t.Setenv("DEFAULT_DISTRICT", "fallback_zone")
	t.Setenv("TOPIC_PREFIX", "sos.")
	t.Setenv("NOMINATIM_TIMEOUT", "5s")
	t.Setenv("GEOCODE_CACHE_TTL", "1h")
	t.Setenv("GEOCODE_CACHE_MAX", "250")
	t.Setenv("DISPATCHER", "kafka")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, StrategyNominatim, cfg.Strategy)
	assert.Equal(t, "fallback_zone", cfg.DefaultDistrict)
	assert.Equal(t, "sos.", cfg.TopicPrefix)
	assert.Equal(t, 5*time.Second, cfg.NominatimTimeout)
	assert.Equal(t, time.Hour, cfg.GeocodeCacheTTL)
	assert.Equal(t, 250, cfg.GeocodeCacheMax)
	assert.Equal(t, DispatcherKafka, cfg.Dispatcher)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown strategy", "RESOLVER_STRATEGY", "plus-codes", "invalid RESOLVER_STRATEGY"},
		{"unknown dispatcher", "DISPATCHER", "sns", "invalid DISPATCHER"},
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT", "soon", "invalid SHUTDOWN_TIMEOUT"},
		{"negative cache ttl", "GEOCODE_CACHE_TTL", "-1h", "invalid GEOCODE_CACHE_TTL"},
		{"zero cache size", "GEOCODE_CACHE_MAX", "0", "invalid GEOCODE_CACHE_MAX"},
		{"non-numeric cache size", "GEOCODE_CACHE_MAX", "lots", "invalid GEOCODE_CACHE_MAX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadKafkaRequiresBrokers(t *testing.T) {
	t.Setenv("DISPATCHER", "kafka")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}
