package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"screentrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		want    any
		wantErr string
	}{
		{name: "unconfigured", cfg: nil, want: &noopPublisher{}},
		{name: "empty provider", cfg: &config.PubSubConfig{}, want: &noopPublisher{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8090/events"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: "project ID is required"},
		{name: "google without topics", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic IDs are required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
