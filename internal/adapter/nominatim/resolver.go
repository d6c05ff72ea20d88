package nominatim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
	"github.com/couchcryptid/sos-alert-service/internal/observability"
)

// ReverseGeocoder converts a coordinate to a structured address. Satisfied
// by *Client; tests substitute fakes.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (Address, error)
}

// Resolver implements domain.Resolver with an external lookup behind a
// TTL cache. Upstream failures degrade to the default district and are
// never cached, so the next caller retries. Concurrent misses for the same
// coordinate may each call upstream; both converge on the same cached
// value afterward.
type Resolver struct {
	client          ReverseGeocoder
	cache           *ttlCache
	defaultDistrict domain.District
	metrics         *observability.Metrics
	logger          *slog.Logger
}

// NewResolver creates a caching resolver. ttl bounds entry age, maxEntries
// bounds cache growth, and the clock drives expiry (inject a fake in
// tests).
func NewResolver(client ReverseGeocoder, defaultDistrict domain.District, ttl time.Duration, maxEntries int, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		client:          client,
		cache:           newTTLCache(ttl, maxEntries, clock),
		defaultDistrict: defaultDistrict,
		metrics:         metrics,
		logger:          logger,
	}
}

// RequiresCoordinate implements domain.Resolver.
func (r *Resolver) RequiresCoordinate() bool { return true }

// Resolve implements domain.Resolver. It never returns an error: upstream
// and parse failures are absorbed into the default district with an
// "error" provenance.
func (r *Resolver) Resolve(ctx context.Context, q domain.ResolveQuery) (domain.Resolution, error) {
	c := *q.Coordinate
	key := cacheKey(c)

	cached, outcome := r.cache.get(key)
	r.metrics.GeocodeCache.WithLabelValues(outcome).Inc()
	if outcome == cacheHit {
		return domain.Resolution{District: cached, Provenance: domain.ProvenanceCache}, nil
	}

	addr, err := r.client.ReverseGeocode(ctx, c.Latitude, c.Longitude)
	if err != nil {
		r.logger.Warn("reverse geocode failed, using default district",
			"lat", c.Latitude,
			"lon", c.Longitude,
			"error", err,
		)
		return domain.Resolution{District: r.defaultDistrict, Provenance: domain.ProvenanceError}, nil
	}

	district := districtFromAddress(addr)
	if district == "" {
		r.logger.Warn("no usable address field, using default district",
			"lat", c.Latitude,
			"lon", c.Longitude,
		)
		return domain.Resolution{District: r.defaultDistrict, Provenance: domain.ProvenanceNominatimFallback}, nil
	}

	r.cache.put(key, district)
	return domain.Resolution{District: district, Provenance: domain.ProvenanceNominatim}, nil
}

// cacheKey rounds the coordinate to 4 decimal places (~11m), so nearby
// callers share an entry. Resolution of the same coordinate within the TTL
// always yields the same district.
func cacheKey(c domain.Coordinate) string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// districtFromAddress tries address fields from most to least specific,
// returning the first that normalizes to a non-empty slug. State, region,
// and country answers are too coarse to stand alone and are wrapped as
// "<name>_general".
func districtFromAddress(addr Address) domain.District {
	for _, candidate := range []string{addr.StateDistrict, addr.County, addr.CityDistrict} {
		if d := domain.Slugify(candidate); d != "" {
			return d
		}
	}
	for _, candidate := range []string{addr.City, addr.Town, addr.Village} {
		if d := domain.Slugify(candidate); d != "" {
			return d
		}
	}
	for _, candidate := range []string{addr.State, addr.Region, addr.Country} {
		if d := domain.Slugify(candidate); d != "" {
			return d + "_general"
		}
	}
	return ""
}
