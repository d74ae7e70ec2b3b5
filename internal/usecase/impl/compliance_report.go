package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"screentrack/internal/domain/constants"
	"screentrack/internal/domain/entity"
	"screentrack/internal/usecase"
	"screentrack/internal/util"
)

// dayTotals is one unit's accounting for a single calendar day.
type dayTotals struct {
	hours    float64
	distance float64
	open     bool
	target   float64
}

// GetComplianceReport aggregates every occupied slot for date's calendar day, read in
// date's own location so a parsed "2026-03-10" means that day in the fleet timezone.
// Slots share their unit's session, so both tablets on a unit report the same hours.
func (s *telemetryService) GetComplianceReport(ctx context.Context, date time.Time) (*usecase.ComplianceReport, error) {
	now := s.clock.Now()
	day := s.policy.Day(now)
	if !date.IsZero() {
		day = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, day.Location())
	}

	units, err := s.unitRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &usecase.ComplianceReport{
		Date:             day.Format(constants.DateLayout),
		PerSlotBreakdown: []usecase.SlotCompliance{},
	}

	var totalHours, totalDistance float64
	for _, unit := range units {
		totals := s.totalsForDay(unit, day, now)

		for i := range unit.Slots {
			slot := &unit.Slots[i]
			if slot.IsEmpty() {
				continue
			}

			line := usecase.SlotCompliance{
				MaterialID:       unit.MaterialID,
				CarGroupID:       unit.CarGroupID,
				SlotNumber:       slot.Number,
				DeviceID:         slot.Device.DeviceID,
				IsOnline:         slot.Device.IsOnline,
				HoursOnline:      util.RoundTo(totals.hours, 2),
				DistanceTraveled: util.RoundTo(totals.distance, 3),
				LastSeen:         slot.Device.LastSeen,
			}
			switch {
			case totals.hours >= totals.target:
				line.ComplianceStatus = entity.ComplianceCompliant
				line.IsCompliant = true
			case totals.open:
				line.ComplianceStatus = entity.CompliancePending
			default:
				line.ComplianceStatus = entity.ComplianceNonCompliant
			}

			report.PerSlotBreakdown = append(report.PerSlotBreakdown, line)
			report.TotalTablets++
			if line.IsOnline {
				report.OnlineTablets++
			}
			if line.IsCompliant {
				report.CompliantTablets++
			}
			totalHours += totals.hours
			totalDistance += totals.distance
		}
	}

	if report.TotalTablets > 0 {
		report.AverageHours = util.RoundTo(totalHours/float64(report.TotalTablets), 2)
		report.AverageDistance = util.RoundTo(totalDistance/float64(report.TotalTablets), 3)
	}

	sort.SliceStable(report.PerSlotBreakdown, func(i, j int) bool {
		a, b := report.PerSlotBreakdown[i], report.PerSlotBreakdown[j]
		if a.MaterialID != b.MaterialID {
			return a.MaterialID < b.MaterialID
		}

		return a.SlotNumber < b.SlotNumber
	})

	s.log(ctx).Debug("[Telemetry] Compliance report built",
		slog.String("date", report.Date),
		slog.Int("tablets", report.TotalTablets),
		slog.Int("compliant", report.CompliantTablets),
	)

	return report, nil
}

// totalsForDay sums closed sessions dated day plus the open session when it belongs to day.
func (s *telemetryService) totalsForDay(unit *entity.TrackingUnit, day, now time.Time) dayTotals {
	totals := dayTotals{target: s.policy.TargetHours}

	for i := range unit.DailySessions {
		session := &unit.DailySessions[i]
		if !s.policy.Day(session.Date).Equal(day) {
			continue
		}
		totals.hours += session.TotalHoursOnline
		totals.distance += session.TotalDistanceTraveled
		if session.TargetHours > 0 {
			totals.target = session.TargetHours
		}
	}

	if session := unit.CurrentSession; session != nil && s.policy.Day(session.Date).Equal(day) {
		totals.hours += session.HoursAt(now)
		totals.distance += session.TotalDistanceTraveled
		totals.open = true
		if session.TargetHours > 0 {
			totals.target = session.TargetHours
		}
	}

	return totals
}
