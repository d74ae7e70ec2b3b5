package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"screentrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimGeocoder_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "14.600000", r.URL.Query().Get("lat"))
		assert.Equal(t, "121.000000", r.URL.Query().Get("lon"))
		assert.Equal(t, "screentrack-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"EDSA, Mandaluyong, Metro Manila"}`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "screentrack-test", time.Second)

	address, err := geocoder.ReverseGeocode(context.Background(), 14.6, 121.0)
	require.NoError(t, err)
	assert.Equal(t, "EDSA, Mandaluyong, Metro Manila", address)
}

func TestNominatimGeocoder_NoAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "", time.Second)

	_, err := geocoder.ReverseGeocode(context.Background(), 0.1, 0.1)
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestNominatimGeocoder_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "", time.Second)

	_, err := geocoder.ReverseGeocode(context.Background(), 14.6, 121.0)
	assert.ErrorContains(t, err, "429")
}

func TestNewGeocoder_DisabledFallsBackToNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	geocoder := NewGeocoder(&config.Config{}, logger)

	_, err := geocoder.ReverseGeocode(context.Background(), 14.6, 121.0)
	assert.ErrorIs(t, err, ErrNoAddress)
}
