package postgres

import (
	"context"
	"fmt"
	"time"

	"screentrack/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// txLockTimeout bounds how long a session or reconcile transaction waits on a tracking
// unit row held by another writer.
const txLockTimeout = 5 * time.Second

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositoryFactory hands out repositories bound to one open transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) NewTrackingUnitRepository() repository.TrackingUnitRepository {
	return NewTrackingUnitRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. gorm rolls back when fn errors or panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", txLockTimeout.Milliseconds())
		if err := tx.Exec(lockTimeout).Error; err != nil {
			return errors.Wrap(err, "failed to set lock timeout")
		}

		return fn(&txRepositoryFactory{tx: tx})
	})
}
