package postgres

import (
	"strings"

	domainerrors "screentrack/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes raised by the tracking_units column constraints.
const (
	sqlStateNotNull = "23502"
	sqlStateCheck   = "23514"
)

// saveError maps a failed tracking unit write onto the domain error a caller can act on.
func saveError(err error) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidSlotNumber.WrapMessage("tracking unit failed a column check")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required tracking unit information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to save tracking unit")
	}
}

func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, sqlStateNotNull) || strings.Contains(msg, "violates not-null")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheck)
}
