package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"screentrack/config"
	deliverycontext "screentrack/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "tracking_units"`, 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound},
		{name: "lock timeout", err: errors.New("ERROR: canceling statement due to lock timeout (SQLSTATE 55P03)"), want: "Tracking unit row lock timed out"},
		{name: "failure", err: errors.New("connection refused"), want: "GORM query failed"},
		{name: "slow", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast without debug is silent"},
		{name: "fast with debug", debug: true, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("device_id", "tab-a"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE tracking_units", 0 }, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "device_id=tab-a")
}
