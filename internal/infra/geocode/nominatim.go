// Package geocode resolves coordinates to street addresses.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"screentrack/config"
	"screentrack/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout   = 3 * time.Second
	defaultUserAgent = "screentrack"
)

// ErrNoAddress is returned when the provider has no address for the coordinates.
var ErrNoAddress = errors.New("no address for coordinates")

type nominatimGeocoder struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NewNominatimGeocoder creates a Geocoder backed by a Nominatim-compatible reverse endpoint.
func NewNominatimGeocoder(endpoint, userAgent string, timeout time.Duration) service.Geocoder {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &nominatimGeocoder{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ReverseGeocode returns the display name Nominatim reports for lat/lng.
func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "failed to decode geocoder response")
	}
	if body.Error != "" || body.DisplayName == "" {
		return "", ErrNoAddress
	}

	return body.DisplayName, nil
}

type noopGeocoder struct{}

// ReverseGeocode always reports no address, so callers fall back to coordinates.
func (noopGeocoder) ReverseGeocode(context.Context, float64, float64) (string, error) {
	return "", ErrNoAddress
}

// NewGeocoder builds the configured Geocoder, or a no-op one when geocoding is disabled.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	geoCfg := cfg.Geocoding
	if geoCfg == nil || !geoCfg.Enabled || geoCfg.Endpoint == "" {
		logger.Info("Reverse geocoding disabled, addresses fall back to coordinates")

		return noopGeocoder{}
	}

	logger.Info("Reverse geocoding enabled", slog.String("endpoint", geoCfg.Endpoint))

	return NewNominatimGeocoder(geoCfg.Endpoint, geoCfg.UserAgent, geoCfg.Timeout)
}
