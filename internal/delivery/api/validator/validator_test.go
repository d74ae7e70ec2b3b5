package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotRequest struct {
	DeviceID   string `json:"deviceId" validate:"required"`
	SlotNumber int    `json:"slotNumber" validate:"required,min=1,max=2"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&slotRequest{DeviceID: "tab-a", SlotNumber: 2}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&slotRequest{SlotNumber: 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deviceId is required")
		assert.Contains(t, err.Error(), "slotNumber must be at most 2")
	})

	t.Run("zero slot is missing", func(t *testing.T) {
		err := v.Validate(&slotRequest{DeviceID: "tab-a"})
		require.Error(t, err)
		assert.Equal(t, "slotNumber is required", err.Error())
	})
}
