package impl

import (
	"slices"
	"strings"
	"sync"
	"time"

	"screentrack/config"
	"screentrack/internal/domain/entity"
	"screentrack/internal/usecase"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

const (
	defaultDatabaseWindow = 30 * time.Second
	defaultStatusCacheTTL = 5 * time.Second
)

// deviceSignals is everything the arbiter knows about one device.
type deviceSignals struct {
	connected     bool
	wsAt          time.Time
	dbOnline      bool
	dbAt          time.Time
	cached        *entity.StatusVerdict
	cacheExpireAt time.Time
}

// statusArbiter implements usecase.StatusUsecase with one mutex over an in-memory map.
type statusArbiter struct {
	mu             sync.Mutex
	devices        map[string]*deviceSignals
	clock          clockwork.Clock
	databaseWindow time.Duration
	cacheTTL       time.Duration
}

// StatusArbiterParams holds dependencies for the status arbiter, injected by Fx.
type StatusArbiterParams struct {
	fx.In

	Config *config.Config
	Clock  clockwork.Clock
}

// NewStatusArbiter creates the in-memory status arbiter.
func NewStatusArbiter(params StatusArbiterParams) usecase.StatusUsecase {
	databaseWindow, cacheTTL := defaultDatabaseWindow, defaultStatusCacheTTL
	if cfg := params.Config.Status; cfg != nil {
		if cfg.DatabaseWindow > 0 {
			databaseWindow = cfg.DatabaseWindow
		}
		if cfg.CacheTTL > 0 {
			cacheTTL = cfg.CacheTTL
		}
	}

	return &statusArbiter{
		devices:        make(map[string]*deviceSignals),
		clock:          params.Clock,
		databaseWindow: databaseWindow,
		cacheTTL:       cacheTTL,
	}
}

func (a *statusArbiter) signals(deviceID string) *deviceSignals {
	sig, ok := a.devices[deviceID]
	if !ok {
		sig = &deviceSignals{}
		a.devices[deviceID] = sig
	}

	return sig
}

// SetWebSocketStatus records a gateway connect or disconnect and invalidates the cached verdict.
func (a *statusArbiter) SetWebSocketStatus(deviceID string, isConnected bool, at time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sig := a.signals(deviceID)
	sig.connected = isConnected
	if at.After(sig.wsAt) {
		sig.wsAt = at
	}
	sig.cached = nil
}

// SetDatabaseStatus records a heartbeat and invalidates the cached verdict.
func (a *statusArbiter) SetDatabaseStatus(deviceID string, isOnline bool, at time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sig := a.signals(deviceID)
	sig.dbOnline = isOnline
	if at.After(sig.dbAt) {
		sig.dbAt = at
	}
	sig.cached = nil
}

// GetStatus returns the cached verdict while fresh, otherwise recomputes it.
func (a *statusArbiter) GetStatus(deviceID string) entity.StatusVerdict {
	a.mu.Lock()
	defer a.mu.Unlock()

	sig, ok := a.devices[deviceID]
	if !ok {
		now := a.clock.Now()

		return entity.StatusVerdict{
			DeviceID:   deviceID,
			Source:     entity.SourceTimeout,
			Confidence: entity.ConfidenceLow,
			ComputedAt: now,
		}
	}

	return a.verdictLocked(deviceID, sig, a.clock.Now())
}

// GetAllStatuses returns a verdict for every known device.
func (a *statusArbiter) GetAllStatuses() []entity.StatusVerdict {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.clock.Now()
	verdicts := make([]entity.StatusVerdict, 0, len(a.devices))
	for deviceID, sig := range a.devices {
		verdicts = append(verdicts, a.verdictLocked(deviceID, sig, now))
	}
	slices.SortFunc(verdicts, func(x, y entity.StatusVerdict) int {
		return strings.Compare(x.DeviceID, y.DeviceID)
	})

	return verdicts
}

// Summary counts the current verdicts.
func (a *statusArbiter) Summary() entity.StatusSummary {
	summary := entity.StatusSummary{
		BySource:     make(map[entity.StatusSource]int),
		ByConfidence: make(map[entity.Confidence]int),
	}
	for _, verdict := range a.GetAllStatuses() {
		summary.Total++
		if verdict.IsOnline {
			summary.Online++
		} else {
			summary.Offline++
		}
		summary.BySource[verdict.Source]++
		summary.ByConfidence[verdict.Confidence]++
	}

	return summary
}

// Forget removes a device whose verdict has fallen back to timeout.
func (a *statusArbiter) Forget(deviceID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	sig, ok := a.devices[deviceID]
	if !ok {
		return false
	}
	if a.computeLocked(deviceID, sig, a.clock.Now()).Source != entity.SourceTimeout {
		return false
	}
	delete(a.devices, deviceID)

	return true
}

func (a *statusArbiter) verdictLocked(deviceID string, sig *deviceSignals, now time.Time) entity.StatusVerdict {
	if sig.cached != nil && now.Before(sig.cacheExpireAt) {
		return *sig.cached
	}

	verdict := a.computeLocked(deviceID, sig, now)
	expireAt := now.Add(a.cacheTTL)
	// A database verdict must not outlive its window through the cache.
	if verdict.Source == entity.SourceDatabase {
		if windowEnd := sig.dbAt.Add(a.databaseWindow); windowEnd.Before(expireAt) {
			expireAt = windowEnd
		}
	}
	sig.cached = &verdict
	sig.cacheExpireAt = expireAt

	return verdict
}

func (a *statusArbiter) computeLocked(deviceID string, sig *deviceSignals, now time.Time) entity.StatusVerdict {
	lastSeen := sig.wsAt
	if sig.dbAt.After(lastSeen) {
		lastSeen = sig.dbAt
	}

	verdict := entity.StatusVerdict{
		DeviceID:   deviceID,
		LastSeen:   lastSeen,
		ComputedAt: now,
	}

	switch {
	case sig.connected:
		verdict.IsOnline = true
		verdict.Source = entity.SourceWebSocket
		verdict.Confidence = entity.ConfidenceHigh
	case sig.dbOnline && !sig.dbAt.IsZero() && now.Sub(sig.dbAt) <= a.databaseWindow:
		verdict.IsOnline = true
		verdict.Source = entity.SourceDatabase
		verdict.Confidence = entity.ConfidenceMedium
	default:
		verdict.Source = entity.SourceTimeout
		verdict.Confidence = entity.ConfidenceLow
	}

	return verdict
}
