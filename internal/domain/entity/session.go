package entity

import "time"

// ComplianceStatus is the outcome of a daily session against its target hours.
type ComplianceStatus string

const (
	CompliancePending      ComplianceStatus = "PENDING"
	ComplianceCompliant    ComplianceStatus = "COMPLIANT"
	ComplianceNonCompliant ComplianceStatus = "NON_COMPLIANT"
)

// Session is one calendar day of online time and travel for a tracking unit.
type Session struct {
	Date                  time.Time        `json:"date"` // Midnight of StartTime's day.
	StartTime             time.Time        `json:"startTime"`
	EndTime               *time.Time       `json:"endTime,omitempty"`
	TotalHoursOnline      float64          `json:"totalHoursOnline"`
	TotalDistanceTraveled float64          `json:"totalDistanceTraveled"` // Kilometers.
	LocationHistory       []LocationPoint  `json:"locationHistory"`
	TargetHours           float64          `json:"targetHours"`
	ComplianceStatus      ComplianceStatus `json:"complianceStatus"`
}

// HoursAt returns the session's online hours as of now. Closed sessions report their
// recorded total; open ones measure from StartTime and never go negative.
func (s *Session) HoursAt(now time.Time) float64 {
	if s.EndTime != nil {
		return s.TotalHoursOnline
	}

	return hoursBetween(s.StartTime, now)
}

// IsCompliantAt reports whether the session has met its target as of now.
func (s *Session) IsCompliantAt(now time.Time) bool {
	return s.HoursAt(now) >= s.TargetHours
}

// ResetTrail clears the breadcrumb trail and the distance derived from it.
func (s *Session) ResetTrail() {
	s.LocationHistory = nil
	s.TotalDistanceTraveled = 0
}

// HasDegeneratePoints reports whether any stored fix is the (0,0) placeholder.
func (s *Session) HasDegeneratePoints() bool {
	for _, point := range s.LocationHistory {
		if point.IsDegenerate() {
			return true
		}
	}

	return false
}

// LastPoint returns the newest fix in the trail.
func (s *Session) LastPoint() (LocationPoint, bool) {
	if len(s.LocationHistory) == 0 {
		return LocationPoint{}, false
	}

	return s.LocationHistory[len(s.LocationHistory)-1], true
}

func hoursBetween(from, to time.Time) float64 {
	if !to.After(from) {
		return 0
	}

	return to.Sub(from).Hours()
}
