package entity

import (
	"fmt"
	"slices"
	"time"

	domainerrors "screentrack/internal/domain/errors"
	"screentrack/internal/util"

	"github.com/google/uuid"
)

const (
	// MaxSlots is the number of tablet positions on one advertising unit.
	MaxSlots = 2

	// AutoSlot asks AssignSlot to choose a slot.
	AutoSlot = 0

	DefaultTargetHours          = 8.0
	DefaultAlertSuppression     = time.Hour
	DefaultMaxLocationHistory   = 2000
	DefaultMaxAlerts            = 200
	DefaultLowAccuracyMeters    = 100.0
	DefaultComplianceWindowDays = 30
)

// Policy carries the tunables the aggregate's commands depend on.
type Policy struct {
	TargetHours            float64
	AlertSuppressionWindow time.Duration
	MaxLocationHistory     int
	MaxAlerts              int
	LowAccuracyMeters      float64
	ComplianceWindowDays   int
	Location               *time.Location // Calendar-day boundaries.
}

// DefaultPolicy returns the production defaults in UTC.
func DefaultPolicy() Policy {
	return Policy{
		TargetHours:            DefaultTargetHours,
		AlertSuppressionWindow: DefaultAlertSuppression,
		MaxLocationHistory:     DefaultMaxLocationHistory,
		MaxAlerts:              DefaultMaxAlerts,
		LowAccuracyMeters:      DefaultLowAccuracyMeters,
		ComplianceWindowDays:   DefaultComplianceWindowDays,
		Location:               time.UTC,
	}
}

// Day returns the midnight that keys t's session.
func (p Policy) Day(t time.Time) time.Time {
	return util.StartOfDay(t, p.Location)
}

// Outcome is the persistence intent produced by a command. Dirty means the unit must be saved.
type Outcome struct {
	Dirty          bool
	NewAlerts      []Alert
	ClosedSessions []Session
	Evicted        []string // Device ids removed from a slot.
}

// Merge folds other into o.
func (o *Outcome) Merge(other Outcome) {
	o.Dirty = o.Dirty || other.Dirty
	o.NewAlerts = append(o.NewAlerts, other.NewAlerts...)
	o.ClosedSessions = append(o.ClosedSessions, other.ClosedSessions...)
	o.Evicted = append(o.Evicted, other.Evicted...)
}

// TrackingUnit is the per-material aggregate of slots, sessions, and alerts.
//
// DeviceID, SlotNumber, and IsOnline mirror the slots for readers that predate two-slot
// units: IsOnline is true iff any slot is online, and DeviceID/SlotNumber name the first
// online slot (or the first occupied one when none is online).
type TrackingUnit struct {
	MaterialID string `json:"materialId"`
	CarGroupID string `json:"carGroupId"`
	ScreenType string `json:"screenType"`

	Slots [MaxSlots]Slot `json:"slots"`

	DeviceID   string    `json:"deviceId"`
	SlotNumber int       `json:"slotNumber"`
	IsOnline   bool      `json:"isOnline"`
	LastSeen   time.Time `json:"lastSeen"`

	CurrentSession *Session  `json:"currentSession"`
	DailySessions  []Session `json:"dailySessions"`

	TotalHoursOnline      float64 `json:"totalHoursOnline"`
	TotalDistanceTraveled float64 `json:"totalDistanceTraveled"`
	AverageDailyHours     float64 `json:"averageDailyHours"`
	ComplianceRate        float64 `json:"complianceRate"`

	Alerts []Alert `json:"alerts"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTrackingUnit creates an empty unit with both slots unoccupied.
func NewTrackingUnit(materialID, carGroupID, screenType string, now time.Time) *TrackingUnit {
	return &TrackingUnit{
		MaterialID: materialID,
		CarGroupID: carGroupID,
		ScreenType: screenType,
		Slots:      [MaxSlots]Slot{{Number: 1}, {Number: 2}},
		LastSeen:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy so commands can run without touching the loaded state.
func (u *TrackingUnit) Clone() *TrackingUnit {
	clone := *u
	for i := range clone.Slots {
		if dev := u.Slots[i].Device; dev != nil {
			devCopy := *dev
			if dev.OnlineSince != nil {
				since := *dev.OnlineSince
				devCopy.OnlineSince = &since
			}
			if dev.CurrentLocation != nil {
				loc := *dev.CurrentLocation
				devCopy.CurrentLocation = &loc
			}
			clone.Slots[i].Device = &devCopy
		}
	}
	if u.CurrentSession != nil {
		session := cloneSession(*u.CurrentSession)
		clone.CurrentSession = &session
	}
	clone.DailySessions = make([]Session, len(u.DailySessions))
	for i, session := range u.DailySessions {
		clone.DailySessions[i] = cloneSession(session)
	}
	clone.Alerts = slices.Clone(u.Alerts)

	return &clone
}

func cloneSession(s Session) Session {
	s.LocationHistory = slices.Clone(s.LocationHistory)
	if s.EndTime != nil {
		end := *s.EndTime
		s.EndTime = &end
	}

	return s
}

// SlotByNumber returns the slot with the given number, or nil.
func (u *TrackingUnit) SlotByNumber(number int) *Slot {
	if !ValidSlotNumber(number) {
		return nil
	}

	return &u.Slots[number-1]
}

// SlotByDevice returns the slot holding deviceID, or nil.
func (u *TrackingUnit) SlotByDevice(deviceID string) *Slot {
	for i := range u.Slots {
		if dev := u.Slots[i].Device; dev != nil && dev.DeviceID == deviceID {
			return &u.Slots[i]
		}
	}

	return nil
}

// OnlineCount returns the number of online slots.
func (u *TrackingUnit) OnlineCount() int {
	count := 0
	for i := range u.Slots {
		if u.Slots[i].IsOnline() {
			count++
		}
	}

	return count
}

// SyncRootStatus restores the root mirror fields from the slots and reports whether any
// field changed.
func (u *TrackingUnit) SyncRootStatus() bool {
	isOnline := false
	deviceID, slotNumber := "", 0
	for i := range u.Slots {
		slot := &u.Slots[i]
		if slot.IsOnline() {
			if !isOnline {
				deviceID, slotNumber = slot.Device.DeviceID, slot.Number
			}
			isOnline = true
		}
	}
	if !isOnline {
		for i := range u.Slots {
			if !u.Slots[i].IsEmpty() {
				deviceID, slotNumber = u.Slots[i].Device.DeviceID, u.Slots[i].Number

				break
			}
		}
	}

	changed := u.IsOnline != isOnline || u.DeviceID != deviceID || u.SlotNumber != slotNumber
	u.IsOnline, u.DeviceID, u.SlotNumber = isOnline, deviceID, slotNumber

	return changed
}

// AssignSlot mounts deviceID on the unit.
//
// With an explicit slot, a different offline device in that slot is evicted and a different
// online device is a conflict. With AutoSlot the first empty slot wins, then the offline slot
// with the oldest LastSeen; if every slot is online the call fails with ErrSlotOccupied.
// A device already mounted elsewhere on the unit moves with its totals intact.
func (u *TrackingUnit) AssignSlot(deviceID string, slotNumber int, now time.Time, policy Policy) (Outcome, error) {
	var out Outcome
	if slotNumber != AutoSlot && !ValidSlotNumber(slotNumber) {
		return out, domainerrors.ErrInvalidSlotNumber
	}

	existing := u.SlotByDevice(deviceID)

	var target *Slot
	if slotNumber == AutoSlot {
		if existing != nil {
			target = existing
		} else {
			picked, err := u.pickSlot()
			if err != nil {
				return out, err
			}
			target = picked
		}
	} else {
		target = u.SlotByNumber(slotNumber)
	}

	if target == existing {
		existing.Device.LastSeen = laterOf(existing.Device.LastSeen, now)
		u.touch(now)
		u.SyncRootStatus()
		out.Dirty = true

		return out, nil
	}

	if !target.IsEmpty() {
		if target.Device.IsOnline {
			return out, domainerrors.ErrSlotOccupied.WithDetails(
				fmt.Sprintf("slot %d is held by online device %s", target.Number, target.Device.DeviceID))
		}
		out.Merge(u.evict(target, deviceID, now, policy))
	}

	if existing != nil {
		target.Device = existing.Device
		existing.Device = nil
		target.Device.LastSeen = laterOf(target.Device.LastSeen, now)
	} else {
		target.Device = &SlotDevice{
			DeviceID:     deviceID,
			LastSeen:     now,
			RegisteredAt: now,
		}
	}

	u.touch(now)
	u.SyncRootStatus()
	out.Dirty = true

	return out, nil
}

func (u *TrackingUnit) pickSlot() (*Slot, error) {
	var oldestOffline *Slot
	for i := range u.Slots {
		slot := &u.Slots[i]
		if slot.IsEmpty() {
			return slot, nil
		}
		if slot.Device.IsOnline {
			continue
		}
		if oldestOffline == nil || slot.Device.LastSeen.Before(oldestOffline.Device.LastSeen) {
			oldestOffline = slot
		}
	}
	if oldestOffline == nil {
		return nil, domainerrors.ErrSlotOccupied.WithDetails("all slots are held by online devices")
	}

	return oldestOffline, nil
}

// evict removes an offline device from slot and rolls the open session. The rolled session
// stays pending: the day is scored once it actually ends.
func (u *TrackingUnit) evict(slot *Slot, incoming string, now time.Time, policy Policy) Outcome {
	var out Outcome
	evicted := slot.Device.DeviceID
	slot.Device = nil
	out.Evicted = append(out.Evicted, evicted)
	out.Dirty = true

	if u.CurrentSession != nil {
		out.Merge(u.closeSession(now, policy, false))
		out.Merge(u.openSession(now, now, policy))
	}

	if alert, ok := u.AddAlert(AlertSlotEvicted,
		fmt.Sprintf("Device %s replaced by %s in slot %d", evicted, incoming, slot.Number),
		SeverityLow, now, policy); ok {
		out.NewAlerts = append(out.NewAlerts, alert)
	}

	return out
}

// ReleaseSlot marks the device in slotNumber offline. The device stays mounted so its
// totals survive until another device takes the slot.
func (u *TrackingUnit) ReleaseSlot(slotNumber int, now time.Time) (Outcome, error) {
	var out Outcome
	slot := u.SlotByNumber(slotNumber)
	if slot == nil {
		return out, domainerrors.ErrInvalidSlotNumber
	}
	if slot.IsEmpty() {
		return out, domainerrors.ErrDeviceNotRegistered.WithDetails(fmt.Sprintf("slot %d is empty", slotNumber))
	}

	u.markOffline(slot, now, true)
	u.touch(now)
	u.SyncRootStatus()
	out.Dirty = true

	return out, nil
}

// MarkDeviceOnline flags deviceID's slot online. Coming back from offline clears the
// session trail so the gap is not counted as a single jump.
func (u *TrackingUnit) MarkDeviceOnline(deviceID string, now time.Time) (Outcome, error) {
	var out Outcome
	slot := u.SlotByDevice(deviceID)
	if slot == nil {
		return out, domainerrors.ErrDeviceNotRegistered
	}

	if !slot.Device.IsOnline {
		since := now
		slot.Device.IsOnline = true
		slot.Device.OnlineSince = &since
		if u.CurrentSession != nil {
			u.CurrentSession.ResetTrail()
		}
	}
	slot.Device.LastSeen = laterOf(slot.Device.LastSeen, now)
	u.touch(now)
	u.SyncRootStatus()
	out.Dirty = true

	return out, nil
}

// MarkDeviceOffline flags deviceID's slot offline and folds the online interval into the
// slot's hours.
func (u *TrackingUnit) MarkDeviceOffline(deviceID string, now time.Time) (Outcome, error) {
	var out Outcome
	slot := u.SlotByDevice(deviceID)
	if slot == nil {
		return out, domainerrors.ErrDeviceNotRegistered
	}

	u.markOffline(slot, now, true)
	u.touch(now)
	u.SyncRootStatus()
	out.Dirty = true

	return out, nil
}

// Touch refreshes LastSeen for deviceID without changing its online flag.
func (u *TrackingUnit) Touch(deviceID string, now time.Time) (Outcome, error) {
	var out Outcome
	slot := u.SlotByDevice(deviceID)
	if slot == nil {
		return out, domainerrors.ErrDeviceNotRegistered
	}
	slot.Device.LastSeen = laterOf(slot.Device.LastSeen, now)
	u.touch(now)
	out.Dirty = true

	return out, nil
}

func (u *TrackingUnit) markOffline(slot *Slot, at time.Time, touch bool) {
	dev := slot.Device
	if dev.IsOnline {
		if dev.OnlineSince != nil {
			dev.TotalHoursOnline += hoursBetween(*dev.OnlineSince, at)
		}
		dev.IsOnline = false
		dev.OnlineSince = nil
	}
	if touch {
		dev.LastSeen = laterOf(dev.LastSeen, at)
	}
}

func (u *TrackingUnit) touch(now time.Time) {
	u.LastSeen = laterOf(u.LastSeen, now)
	u.UpdatedAt = now
}

// StartSession opens today's session if none is open.
func (u *TrackingUnit) StartSession(now time.Time, policy Policy) Outcome {
	if u.CurrentSession != nil {
		return Outcome{}
	}

	return u.openSession(now, now, policy)
}

func (u *TrackingUnit) openSession(start, now time.Time, policy Policy) Outcome {
	u.CurrentSession = &Session{
		Date:             policy.Day(start),
		StartTime:        start,
		TargetHours:      policy.TargetHours,
		ComplianceStatus: CompliancePending,
	}
	u.UpdatedAt = now

	return Outcome{Dirty: true}
}

// EndSession closes the open session at now.
func (u *TrackingUnit) EndSession(now time.Time, policy Policy) (Outcome, error) {
	if u.CurrentSession == nil {
		return Outcome{}, domainerrors.ErrNoActiveSession
	}

	return u.closeSession(now, policy, true), nil
}

// closeSession ends the open session at end. With endOfDay the whole calendar day is scored,
// including sessions rolled earlier by slot swaps; otherwise the session stays pending.
func (u *TrackingUnit) closeSession(end time.Time, policy Policy, endOfDay bool) Outcome {
	var out Outcome
	session := u.CurrentSession
	if end.Before(session.StartTime) {
		end = session.StartTime
	}
	session.EndTime = &end
	session.TotalHoursOnline = hoursBetween(session.StartTime, end)
	session.ComplianceStatus = CompliancePending

	u.DailySessions = append(u.DailySessions, *session)
	u.CurrentSession = nil
	u.TotalHoursOnline += session.TotalHoursOnline
	u.UpdatedAt = end
	out.Dirty = true

	if !endOfDay {
		out.ClosedSessions = append(out.ClosedSessions, *session)

		return out
	}

	dayHours, target, status := u.scoreDay(session.Date, policy)
	out.ClosedSessions = append(out.ClosedSessions, u.DailySessions[len(u.DailySessions)-1])
	u.recomputeAggregates(end, policy)

	if status == ComplianceNonCompliant {
		msg := fmt.Sprintf("Session for %s closed with %s online, below the %s target",
			session.Date.Format("2006-01-02"),
			util.FormatHours(dayHours),
			util.FormatHours(target))
		if alert, ok := u.AddAlert(AlertLowHours, msg, SeverityMedium, end, policy); ok {
			out.NewAlerts = append(out.NewAlerts, alert)
		}
	}

	return out
}

// scoreDay sums every closed session dated day and stamps them all with the day's status.
func (u *TrackingUnit) scoreDay(day time.Time, policy Policy) (float64, float64, ComplianceStatus) {
	day = policy.Day(day)
	hours, target := 0.0, 0.0
	for _, session := range u.DailySessions {
		if policy.Day(session.Date).Equal(day) {
			hours += session.TotalHoursOnline
			target = max(target, session.TargetHours)
		}
	}

	status := ComplianceNonCompliant
	if hours >= target {
		status = ComplianceCompliant
	}
	for i := range u.DailySessions {
		if policy.Day(u.DailySessions[i].Date).Equal(day) {
			u.DailySessions[i].ComplianceStatus = status
		}
	}

	return hours, target, status
}

// ResetIfNewDay closes a session left over from an earlier day and opens today's. The old
// session ends at its own midnight so its date still matches its start. A clock that moved
// backwards never triggers a rollover.
func (u *TrackingUnit) ResetIfNewDay(now time.Time, policy Policy) Outcome {
	var out Outcome
	session := u.CurrentSession
	if session == nil {
		return out
	}
	today := policy.Day(now)
	if !today.After(session.Date) {
		return out
	}

	end := policy.Day(session.Date.Add(36 * time.Hour))
	if now.Before(end) {
		end = now
	}
	out.Merge(u.closeSession(end, policy, true))

	start := now
	if u.IsOnline {
		start = today
	}
	out.Merge(u.openSession(start, now, policy))

	return out
}

// recomputeAggregates derives the trailing-window averages from scored days. Sessions on the
// same day are summed so a mid-day device swap does not split a compliant day, and a day
// still holding a pending session is left out.
func (u *TrackingUnit) recomputeAggregates(now time.Time, policy Policy) {
	windowDays := policy.ComplianceWindowDays
	if windowDays <= 0 {
		windowDays = DefaultComplianceWindowDays
	}
	cutoff := policy.Day(now).AddDate(0, 0, -windowDays)

	hoursByDay := make(map[time.Time]float64)
	targetByDay := make(map[time.Time]float64)
	pending := make(map[time.Time]bool)
	for _, session := range u.DailySessions {
		day := policy.Day(session.Date)
		if day.Before(cutoff) {
			continue
		}
		if session.ComplianceStatus == CompliancePending {
			pending[day] = true
		}
		hoursByDay[day] += session.TotalHoursOnline
		targetByDay[day] = max(targetByDay[day], session.TargetHours)
	}
	for day := range pending {
		delete(hoursByDay, day)
	}

	if len(hoursByDay) == 0 {
		u.AverageDailyHours = 0
		u.ComplianceRate = 0

		return
	}

	total, compliant := 0.0, 0
	for day, hours := range hoursByDay {
		total += hours
		if hours >= targetByDay[day] {
			compliant++
		}
	}
	u.AverageDailyHours = total / float64(len(hoursByDay))
	u.ComplianceRate = float64(compliant) / float64(len(hoursByDay))
}

// RecordLocation appends a fix for deviceID to the open session and accrues the leg
// distance. The caller opens the session first.
func (u *TrackingUnit) RecordLocation(deviceID string, point LocationPoint, now time.Time, policy Policy) (Outcome, error) {
	var out Outcome
	slot := u.SlotByDevice(deviceID)
	if slot == nil {
		return out, domainerrors.ErrDeviceNotRegistered
	}
	if u.CurrentSession == nil {
		return out, domainerrors.ErrNoActiveSession
	}

	if !slot.Device.IsOnline {
		online, err := u.MarkDeviceOnline(deviceID, now)
		if err != nil {
			return out, err
		}
		out.Merge(online)
	}

	session := u.CurrentSession
	if session.HasDegeneratePoints() {
		session.ResetTrail()
	}

	slot.Device.LastSeen = laterOf(slot.Device.LastSeen, now)
	u.touch(now)
	out.Dirty = true

	if point.IsDegenerate() {
		return out, nil
	}

	if prev, ok := session.LastPoint(); ok {
		leg := prev.DistanceKm(point)
		session.TotalDistanceTraveled += leg
		u.TotalDistanceTraveled += leg
		slot.Device.TotalDistanceTraveled += leg
	}

	session.LocationHistory = append(session.LocationHistory, point)
	if limit := policy.MaxLocationHistory; limit > 0 && len(session.LocationHistory) > limit {
		session.LocationHistory = slices.Clone(session.LocationHistory[len(session.LocationHistory)-limit:])
	}

	current := point
	slot.Device.CurrentLocation = &current

	if policy.LowAccuracyMeters > 0 && point.Accuracy > policy.LowAccuracyMeters {
		msg := fmt.Sprintf("Device %s reported GPS accuracy of %.0fm", deviceID, point.Accuracy)
		if alert, ok := u.AddAlert(AlertLowAccuracy, msg, SeverityLow, now, policy); ok {
			out.NewAlerts = append(out.NewAlerts, alert)
		}
	}

	return out, nil
}

// AddAlert appends an alert unless an unresolved alert of the same type was raised within
// the suppression window. It reports whether the alert was stored.
func (u *TrackingUnit) AddAlert(alertType AlertType, message string, severity AlertSeverity, now time.Time, policy Policy) (Alert, bool) {
	window := policy.AlertSuppressionWindow
	if window <= 0 {
		window = DefaultAlertSuppression
	}
	for _, existing := range u.Alerts {
		if existing.Type == alertType && !existing.IsResolved && now.Sub(existing.Timestamp) < window {
			return Alert{}, false
		}
	}

	alert := Alert{
		ID:        uuid.NewString(),
		Type:      alertType,
		Message:   message,
		Severity:  severity,
		Timestamp: now,
	}
	u.Alerts = append(u.Alerts, alert)
	if limit := policy.MaxAlerts; limit > 0 && len(u.Alerts) > limit {
		u.Alerts = slices.Clone(u.Alerts[len(u.Alerts)-limit:])
	}
	u.UpdatedAt = now

	return alert, true
}

// ResolveAlert marks the alert with the given id resolved.
func (u *TrackingUnit) ResolveAlert(alertID string, now time.Time) (Outcome, error) {
	for i := range u.Alerts {
		if u.Alerts[i].ID != alertID {
			continue
		}
		if u.Alerts[i].IsResolved {
			return Outcome{}, nil
		}
		resolvedAt := now
		u.Alerts[i].IsResolved = true
		u.Alerts[i].ResolvedAt = &resolvedAt
		u.UpdatedAt = now

		return Outcome{Dirty: true}, nil
	}

	return Outcome{}, domainerrors.ErrAlertNotFound
}

// ReconcileStale forces offline every online slot silent since before cutoff, unless
// isLive still vouches for the device, then repairs the root mirror. Units left fully
// offline and silent past idleTimeout have their session closed at the last sighting.
// Running it again with nothing changed yields a clean Outcome.
func (u *TrackingUnit) ReconcileStale(now, cutoff time.Time, idleTimeout time.Duration, isLive func(deviceID string) bool, policy Policy) Outcome {
	var out Outcome
	for i := range u.Slots {
		slot := &u.Slots[i]
		if !slot.IsOnline() || !slot.Device.LastSeen.Before(cutoff) {
			continue
		}
		if isLive != nil && isLive(slot.Device.DeviceID) {
			continue
		}
		u.markOffline(slot, slot.Device.LastSeen, false)
		out.Dirty = true

		msg := fmt.Sprintf("Device %s in slot %d went silent at %s", slot.Device.DeviceID, slot.Number,
			slot.Device.LastSeen.In(policyLocation(policy)).Format(time.RFC3339))
		if alert, ok := u.AddAlert(AlertDeviceOffline, msg, SeverityHigh, now, policy); ok {
			out.NewAlerts = append(out.NewAlerts, alert)
		}
	}

	if u.SyncRootStatus() {
		out.Dirty = true
	}

	if u.IsOnline {
		out.Merge(u.ResetIfNewDay(now, policy))
	} else if u.CurrentSession != nil && idleTimeout > 0 && now.Sub(u.LastSeen) >= idleTimeout {
		out.Merge(u.closeSession(u.LastSeen, policy, true))
	}

	return out
}

func policyLocation(policy Policy) *time.Location {
	if policy.Location == nil {
		return time.UTC
	}

	return policy.Location
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}

	return a
}
