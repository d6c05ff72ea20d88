package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Resolver strategy names accepted in RESOLVER_STRATEGY.
const (
	StrategyStatic    = "static"
	StrategyNominatim = "nominatim"
	StrategyAsserted  = "asserted"
)

// Dispatcher backend names accepted in DISPATCHER.
const (
	DispatcherFCM   = "fcm"
	DispatcherKafka = "kafka"
	DispatcherLog   = "log"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	Strategy        string
	DefaultDistrict string
	TopicPrefix     string

	// Nominatim reverse-geocoding configuration (strategy "nominatim").
	NominatimBaseURL   string
	NominatimUserAgent string
	NominatimTimeout   time.Duration
	GeocodeCacheTTL    time.Duration
	GeocodeCacheMax    int

	// Dispatch backend configuration.
	Dispatcher         string
	FCMCredentialsFile string
	KafkaBrokers       []string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	nominatimTimeout, err := parseDuration("NOMINATIM_TIMEOUT", "2.5s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("GEOCODE_CACHE_TTL", "12h")
	if err != nil {
		return nil, err
	}
	cacheMax, err := parseInt("GEOCODE_CACHE_MAX", 1000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		Strategy:        envOrDefault("RESOLVER_STRATEGY", StrategyStatic),
		DefaultDistrict: envOrDefault("DEFAULT_DISTRICT", "unknown_district"),
		TopicPrefix:     envOrDefault("TOPIC_PREFIX", "district-"),

		NominatimBaseURL:   envOrDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org/reverse"),
		NominatimUserAgent: envOrDefault("NOMINATIM_USER_AGENT", "sos-alert-service/1.0"),
		NominatimTimeout:   nominatimTimeout,
		GeocodeCacheTTL:    cacheTTL,
		GeocodeCacheMax:    cacheMax,

		Dispatcher:         envOrDefault("DISPATCHER", DispatcherLog),
		FCMCredentialsFile: os.Getenv("FCM_CREDENTIALS_FILE"),
		KafkaBrokers:       parseBrokers(os.Getenv("KAFKA_BROKERS")),
	}

	switch cfg.Strategy {
	case StrategyStatic, StrategyNominatim, StrategyAsserted:
	default:
		return nil, fmt.Errorf("invalid RESOLVER_STRATEGY %q: must be %s, %s, or %s",
			cfg.Strategy, StrategyStatic, StrategyNominatim, StrategyAsserted)
	}

	switch cfg.Dispatcher {
	case DispatcherFCM, DispatcherLog:
	case DispatcherKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("DISPATCHER is kafka but KAFKA_BROKERS is not set")
		}
	default:
		return nil, fmt.Errorf("invalid DISPATCHER %q: must be %s, %s, or %s",
			cfg.Dispatcher, DispatcherFCM, DispatcherKafka, DispatcherLog)
	}

	if cfg.DefaultDistrict == "" {
		return nil, errors.New("DEFAULT_DISTRICT must not be empty")
	}
	if cfg.Strategy == StrategyNominatim && cfg.NominatimUserAgent == "" {
		return nil, errors.New("NOMINATIM_USER_AGENT must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive duration", key)
	}
	return d, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}

func parseBrokers(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
