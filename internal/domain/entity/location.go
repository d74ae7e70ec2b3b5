package entity

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// LocationPoint is a single GPS fix reported by a tablet.
type LocationPoint struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Speed     float64   `json:"speed"`    // km/h as reported by the device.
	Heading   float64   `json:"heading"`  // Degrees from north.
	Accuracy  float64   `json:"accuracy"` // Meters.
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// IsDegenerate reports the (0,0) fix devices emit before acquiring GPS.
func (p LocationPoint) IsDegenerate() bool {
	return p.Lat == 0 && p.Lng == 0
}

// Point returns the fix as an orb point (lng, lat).
func (p LocationPoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// DistanceKm returns the great-circle distance to other in kilometers.
func (p LocationPoint) DistanceKm(other LocationPoint) float64 {
	return geo.DistanceHaversine(p.Point(), other.Point()) / 1000
}
