package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/sos-alert-service/internal/adapter/fcm"
	httpadapter "github.com/couchcryptid/sos-alert-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/sos-alert-service/internal/adapter/kafka"
	"github.com/couchcryptid/sos-alert-service/internal/adapter/nominatim"
	"github.com/couchcryptid/sos-alert-service/internal/alert"
	"github.com/couchcryptid/sos-alert-service/internal/config"
	"github.com/couchcryptid/sos-alert-service/internal/domain"
	"github.com/couchcryptid/sos-alert-service/internal/observability"
	"github.com/couchcryptid/sos-alert-service/internal/resolver/asserted"
	"github.com/couchcryptid/sos-alert-service/internal/resolver/static"

	"github.com/jonboulle/clockwork"
)

func main() {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var resolver domain.Resolver
	switch cfg.Strategy {
	case config.StrategyStatic:
		resolver = static.New(domain.District(cfg.DefaultDistrict))
	case config.StrategyNominatim:
		client := nominatim.NewClient(cfg.NominatimBaseURL, cfg.NominatimUserAgent, cfg.NominatimTimeout, metrics, logger)
		resolver = nominatim.NewResolver(client, domain.District(cfg.DefaultDistrict),
			cfg.GeocodeCacheTTL, cfg.GeocodeCacheMax, clockwork.NewRealClock(), metrics, logger)
	case config.StrategyAsserted:
		resolver = asserted.New()
	}
	logger.Info("district resolver configured", "strategy", cfg.Strategy)

	var dispatcher domain.Dispatcher
	var kafkaDispatcher *kafkaadapter.Dispatcher
	switch cfg.Dispatcher {
	case config.DispatcherFCM:
		d, err := fcm.NewDispatcher(ctx, cfg.FCMCredentialsFile, logger)
		if err != nil {
			logger.Error("failed to initialize fcm", "error", err)
			os.Exit(1)
		}
		dispatcher = d
	case config.DispatcherKafka:
		kafkaDispatcher = kafkaadapter.NewDispatcher(cfg.KafkaBrokers, logger)
		dispatcher = kafkaDispatcher
	case config.DispatcherLog:
		dispatcher = alert.NewLogDispatcher(logger)
	}
	logger.Info("dispatch backend configured", "backend", cfg.Dispatcher)

	svc := alert.New(resolver, dispatcher, cfg.Strategy, cfg.TopicPrefix, metrics, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaDispatcher != nil {
		if err := kafkaDispatcher.Close(); err != nil {
			logger.Error("kafka dispatcher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
