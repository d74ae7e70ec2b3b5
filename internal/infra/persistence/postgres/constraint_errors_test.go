package postgres

import (
	"testing"

	domainerrors "screentrack/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSaveError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantIs   error
	}{
		{
			name:     "check constraint",
			err:      errors.New(`ERROR: new row violates check constraint "chk_slot_number" (SQLSTATE 23514)`),
			wantCode: domainerrors.ErrInvalidSlotNumber.ErrorCode(),
			wantIs:   domainerrors.ErrInvalidSlotNumber,
		},
		{
			name:     "gorm check sentinel",
			err:      gorm.ErrCheckConstraintViolated,
			wantCode: domainerrors.ErrInvalidSlotNumber.ErrorCode(),
			wantIs:   domainerrors.ErrInvalidSlotNumber,
		},
		{
			name:     "not null",
			err:      errors.New(`ERROR: null value in column "slots" violates not-null constraint (SQLSTATE 23502)`),
			wantCode: domainerrors.ErrValidationFailed.ErrorCode(),
			wantIs:   domainerrors.ErrValidationFailed,
		},
		{
			name:     "anything else",
			err:      errors.New("connection reset by peer"),
			wantCode: "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := saveError(tt.err)

			var appErr domainerrors.AppError
			if assert.True(t, errors.As(got, &appErr)) {
				assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
		})
	}
}
