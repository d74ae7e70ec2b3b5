package api

import (
	"testing"

	"screentrack/config"

	"github.com/stretchr/testify/assert"
)

func TestCORSConfig(t *testing.T) {
	t.Run("any origin without an allow-list", func(t *testing.T) {
		corsCfg := corsConfig(&config.Config{})

		assert.Equal(t, []string{"*"}, corsCfg.AllowOrigins)
		assert.Contains(t, corsCfg.AllowHeaders, "X-Device-Id")
		assert.Equal(t, []string{"X-Request-Id"}, corsCfg.ExposeHeaders)
	})

	t.Run("presence allow-list", func(t *testing.T) {
		cfg := &config.Config{Presence: &config.PresenceConfig{
			AllowedOrigins: []string{"https://ops.example.com"},
		}}

		assert.Equal(t, []string{"https://ops.example.com"}, corsConfig(cfg).AllowOrigins)
	})
}
