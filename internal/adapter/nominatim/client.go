// Package nominatim resolves districts through an external
// reverse-geocoding service, amortized by a time-bound cache.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/sos-alert-service/internal/observability"
)

// Address is the subset of the upstream address object the resolver
// consults, from most to least specific.
type Address struct {
	StateDistrict string `json:"state_district"`
	County        string `json:"county"`
	CityDistrict  string `json:"city_district"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	State         string `json:"state"`
	Region        string `json:"region"`
	Country       string `json:"country"`
}

// Client calls a Nominatim-compatible reverse-geocoding endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a reverse-geocoding client. The user agent is required
// by Nominatim's usage policy; the timeout bounds every request so a slow
// upstream cannot stall a caller.
func NewClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// ReverseGeocode converts a coordinate to a structured address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (Address, error) {
	params := url.Values{
		"format":         {"jsonv2"},
		"lat":            {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(lon, 'f', -1, 64)},
		"zoom":           {"10"},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Address{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	c.metrics.GeocodeAPIDuration.Observe(elapsed.Seconds())
	if err != nil {
		return Address{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("reverse geocode request",
		"lat", lat,
		"lon", lon,
		"status", resp.StatusCode,
		"duration", elapsed,
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Address{}, fmt.Errorf("nominatim error: status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Address Address `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Address{}, fmt.Errorf("decode response: %w", err)
	}
	return payload.Address, nil
}
