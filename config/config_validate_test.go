package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config uses defaults"},
		{
			name: "valid presence",
			cfg:  Config{Presence: &PresenceConfig{PingInterval: 30 * time.Second, PongTimeout: 90 * time.Second}},
		},
		{
			name:    "pong timeout inside ping interval",
			cfg:     Config{Presence: &PresenceConfig{PingInterval: 30 * time.Second, PongTimeout: 30 * time.Second}},
			wantErr: "must exceed presence.pingInterval",
		},
		{
			name:    "negative write timeout",
			cfg:     Config{Presence: &PresenceConfig{WriteTimeout: -time.Second}},
			wantErr: "presence timings",
		},
		{
			name:    "negative status window",
			cfg:     Config{Status: &StatusConfig{DatabaseWindow: -time.Second}},
			wantErr: "status windows",
		},
		{
			name:    "unknown timezone",
			cfg:     Config{Telemetry: &TelemetryConfig{Timezone: "Mars/Olympus"}},
			wantErr: "telemetry.timezone",
		},
		{
			name:    "target hours beyond a day",
			cfg:     Config{Telemetry: &TelemetryConfig{TargetHours: 25}},
			wantErr: "telemetry.targetHours",
		},
		{
			name: "disabled reconcile is not checked",
			cfg:  Config{Reconcile: &ReconcileConfig{Interval: -time.Second}},
		},
		{
			name:    "negative reconcile interval",
			cfg:     Config{Reconcile: &ReconcileConfig{Enabled: true, Interval: -time.Second}},
			wantErr: "reconcile timings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
