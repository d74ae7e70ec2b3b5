package repository

import "context"

// TransactionManager runs a unit of work against tracking units atomically. Row locks taken
// through LockByMaterialID are held until fn returns.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewTrackingUnitRepository() TrackingUnitRepository
}
