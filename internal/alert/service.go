// Package alert orchestrates the inbound flow: validate, resolve the
// district, build the notification, dispatch.
package alert

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
	"github.com/couchcryptid/sos-alert-service/internal/observability"
)

// Receipt is what a successful dispatch reports back to the caller.
type Receipt struct {
	MessageID  string
	District   domain.District
	Provenance domain.Provenance
	Topic      string
	Timestamp  string
}

// Service wires the active resolver strategy to the dispatch backend.
// Each alert produces exactly one dispatch attempt and one response.
type Service struct {
	resolver    domain.Resolver
	dispatcher  domain.Dispatcher
	strategy    string
	topicPrefix string
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// New creates the service. strategy names the active resolver for metric
// labels and the health endpoint.
func New(resolver domain.Resolver, dispatcher domain.Dispatcher, strategy, topicPrefix string, metrics *observability.Metrics, logger *slog.Logger) *Service {
	s := &Service{
		resolver:    resolver,
		dispatcher:  dispatcher,
		strategy:    strategy,
		topicPrefix: topicPrefix,
		metrics:     metrics,
		logger:      logger,
	}
	metrics.ServiceReady.Set(1)
	return s
}

// Strategy returns the active resolver strategy name.
func (s *Service) Strategy() string { return s.strategy }

// RequiresCoordinate reports whether the active strategy needs a location
// on every alert.
func (s *Service) RequiresCoordinate() bool { return s.resolver.RequiresCoordinate() }

// CheckReadiness implements the readiness contract for the HTTP server.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.resolver == nil || s.dispatcher == nil {
		return errors.New("service wiring incomplete")
	}
	return nil
}

// Process runs one alert through the full flow. Validation problems come
// back as *domain.ValidationError or domain.ErrDistrictRequired; delivery
// problems as *domain.DeliveryError. Resolution never fails, it degrades.
func (s *Service) Process(ctx context.Context, req domain.AlertRequest) (Receipt, error) {
	if err := req.Validate(s.resolver.RequiresCoordinate()); err != nil {
		s.metrics.ValidationErrors.Inc()
		return Receipt{}, err
	}
	s.metrics.AlertsReceived.WithLabelValues(string(req.Kind)).Inc()

	res, err := s.resolver.Resolve(ctx, domain.ResolveQuery{
		Coordinate: req.Location,
		Asserted:   req.Sender.District,
	})
	if err != nil {
		// Only the asserted strategy can fail, and only on client input.
		s.metrics.ValidationErrors.Inc()
		return Receipt{}, err
	}
	s.observeResolution(req.SOSID, res)

	payload := domain.BuildNotification(req, res, s.topicPrefix)

	start := time.Now()
	messageID, err := s.dispatcher.Dispatch(ctx, payload)
	s.metrics.DispatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.DispatchErrors.Inc()
		s.logger.Error("dispatch failed",
			"sos_id", req.SOSID,
			"topic", payload.Topic,
			"error", err,
		)
		return Receipt{}, err
	}
	s.metrics.Dispatches.Inc()

	s.logger.Info("alert dispatched",
		"sos_id", req.SOSID,
		"kind", req.Kind,
		"district", res.District,
		"provenance", res.Provenance,
		"topic", payload.Topic,
		"message_id", messageID,
	)

	return Receipt{
		MessageID:  messageID,
		District:   res.District,
		Provenance: res.Provenance,
		Topic:      payload.Topic,
		Timestamp:  payload.Data["timestamp"],
	}, nil
}

// ResolveDistrict answers a coordinate-only lookup for the /get-district
// endpoint. Only meaningful for coordinate strategies.
func (s *Service) ResolveDistrict(ctx context.Context, c domain.Coordinate) (domain.Resolution, error) {
	res, err := s.resolver.Resolve(ctx, domain.ResolveQuery{Coordinate: &c})
	if err != nil {
		return domain.Resolution{}, err
	}
	s.observeResolution("", res)
	return res, nil
}

// Topic returns the topic name for a district under the configured prefix.
func (s *Service) Topic(d domain.District) string { return s.topicPrefix + string(d) }

func (s *Service) observeResolution(sosID string, res domain.Resolution) {
	s.metrics.Resolutions.WithLabelValues(s.strategy, string(res.Provenance)).Inc()
	if res.Provenance.Degraded() {
		s.logger.Warn("district resolution degraded",
			"sos_id", sosID,
			"district", res.District,
			"provenance", res.Provenance,
		)
	}
}
