package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatHours renders fractional hours as a duration string (2.5 -> "2h30m").
func FormatHours(hours float64) string {
	if hours <= 0 || math.IsNaN(hours) {
		return "0s"
	}

	return FormatDuration(time.Duration(hours * float64(time.Hour)))
}

// FormatCoordinate renders a coordinate pair the way it is shown when no street address is known.
func FormatCoordinate(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))

	return math.Round(value*factor) / factor
}
