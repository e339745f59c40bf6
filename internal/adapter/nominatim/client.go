// Package nominatim implements domain.Geocoder against a
// Nominatim-compatible search endpoint.
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
	"strings"
	"time"

	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/observability"
)

// Client implements domain.Geocoder using the Nominatim search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Nominatim geocoding client. The user agent identifies
// the application as the Nominatim usage policy requires.
func NewClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		metrics:    metrics,
		logger:     logger,
	}
}

// Lookup resolves a place name to coordinates. Queries without a country
// hint (no comma) are retried with common country suffixes before giving
// up, then ErrPlaceNotFound is returned.
func (c *Client) Lookup(ctx context.Context, place string) (domain.GeocodingResult, error) {
	queries := []string{place}
	if !strings.Contains(place, ",") {
		queries = append(queries, place+", China", place+", USA")
	}

	for _, q := range queries {
		result, found, err := c.search(ctx, q)
		if err != nil {
			c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
			return domain.GeocodingResult{}, err
		}
		if found {
			c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
			return result, nil
		}
	}

	c.metrics.GeocodeRequests.WithLabelValues("not_found").Inc()
	return domain.GeocodingResult{}, fmt.Errorf("%q: %w", place, domain.ErrPlaceNotFound)
}

func (c *Client) search(ctx context.Context, query string) (domain.GeocodingResult, bool, error) {
	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}
	fullURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.GeocodingResult{}, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.GeocodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.GeocodingResult{}, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.GeocodingResult{}, false, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.GeocodingResult{}, false, fmt.Errorf("decode response: %w", err)
	}

	if len(places) == 0 {
		c.logger.Debug("no geocoding match", "query", query)
		return domain.GeocodingResult{}, false, nil
	}

	p := places[0]
	lat, errLat := strconv.ParseFloat(p.Lat, 64)
	lon, errLon := strconv.ParseFloat(p.Lon, 64)
	if errLat != nil || errLon != nil {
		return domain.GeocodingResult{}, false, fmt.Errorf("bad coordinates in response: lat=%q lon=%q", p.Lat, p.Lon)
	}

	return domain.GeocodingResult{
		Lat:         lat,
		Lon:         lon,
		DisplayName: p.DisplayName,
	}, true, nil
}

// Nominatim API response type. Coordinates arrive as strings.

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
