package service

import "context"

// Geocoder resolves coordinates to a human readable address.
type Geocoder interface {
	// ReverseGeocode returns the address for lat/lng, or an error when none is available
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}
