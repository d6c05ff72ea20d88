package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// alert path.
type Metrics struct {
	AlertsReceived   *prometheus.CounterVec // labels: kind={sos_alert,stop}
	ValidationErrors prometheus.Counter
	Dispatches       prometheus.Counter
	DispatchErrors   prometheus.Counter
	DispatchDuration prometheus.Histogram

	// District resolution metrics.
	Resolutions        *prometheus.CounterVec // labels: strategy, provenance
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss,stale}
	GeocodeAPIDuration prometheus.Histogram
	ServiceReady       prometheus.Gauge
}

// NewMetrics creates and registers all alert-path metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AlertsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sos",
			Name:      "alerts_received_total",
			Help:      "Alert requests accepted for processing, by kind.",
		}, []string{"kind"}),
		ValidationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Name:      "validation_errors_total",
			Help:      "Requests rejected for missing or malformed fields.",
		}),
		Dispatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Name:      "dispatches_total",
			Help:      "Notifications successfully handed to the push backend.",
		}),
		DispatchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Name:      "dispatch_errors_total",
			Help:      "Delivery failures reported by the push backend.",
		}),
		DispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sos",
			Name:      "dispatch_duration_seconds",
			Help:      "Duration of a publish call to the push backend.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sos",
			Name:      "resolutions_total",
			Help:      "District resolutions by strategy and provenance.",
		}, []string{"strategy", "provenance"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sos",
			Name:      "geocode_cache_total",
			Help:      "Reverse-geocode cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sos",
			Name:      "geocode_api_duration_seconds",
			Help:      "Nominatim request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		ServiceReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sos",
			Name:      "service_ready",
			Help:      "1 when the resolver and dispatcher are wired, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.AlertsReceived,
		m.ValidationErrors,
		m.Dispatches,
		m.DispatchErrors,
		m.DispatchDuration,
		m.Resolutions,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.ServiceReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AlertsReceived:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sos", Name: "alerts_received_total"}, []string{"kind"}),
		ValidationErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sos", Name: "validation_errors_total"}),
		Dispatches:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sos", Name: "dispatches_total"}),
		DispatchErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sos", Name: "dispatch_errors_total"}),
		DispatchDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "sos", Name: "dispatch_duration_seconds"}),
		Resolutions:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sos", Name: "resolutions_total"}, []string{"strategy", "provenance"}),
		GeocodeCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sos", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "sos", Name: "geocode_api_duration_seconds"}),
		ServiceReady:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "sos", Name: "service_ready"}),
	}
}
