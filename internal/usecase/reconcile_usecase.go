package usecase

import "context"

// ReconcileResult counts what one reconciliation pass changed
type ReconcileResult struct {
	UnitsScanned    int `json:"unitsScanned"`
	UnitsUpdated    int `json:"unitsUpdated"`
	SlotsForced     int `json:"slotsForced"`
	SessionsClosed  int `json:"sessionsClosed"`
	StatusesDropped int `json:"statusesDropped"`
	Failures        int `json:"failures"`
}

// ReconcileUsecase repairs drift between presence signals and persisted units
type ReconcileUsecase interface {
	// RunOnce performs a single reconciliation pass
	RunOnce(ctx context.Context) (*ReconcileResult, error)
}
