package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Presence configures the WebSocket gateway's liveness protocol
	Presence *PresenceConfig `json:"presence" yaml:"presence"`

	// Status configures the status arbiter
	Status *StatusConfig `json:"status" yaml:"status"`

	// Telemetry configures session accounting and alerting
	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`

	// Reconcile configures the periodic drift repair job
	Reconcile *ReconcileConfig `json:"reconcile" yaml:"reconcile"`

	// Geocoding configures best-effort reverse geocoding of location fixes
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for slot pairing QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PresenceConfig defines the gateway's ping/pong liveness settings
type PresenceConfig struct {
	// Interval between server pings
	PingInterval time.Duration `json:"pingInterval" yaml:"pingInterval"`

	// A connection with no pong for this long is dead
	PongTimeout time.Duration `json:"pongTimeout" yaml:"pongTimeout"`

	// Consecutive failed ping sends before a connection is dead
	MaxPingFailures int `json:"maxPingFailures" yaml:"maxPingFailures"`

	// Deadline for a single frame write
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`

	// Outbound frames buffered per connection before it is considered stuck
	SendBuffer int `json:"sendBuffer" yaml:"sendBuffer"`

	// Allowed Origin headers for upgrades; empty allows any
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// StatusConfig defines status arbiter windows
type StatusConfig struct {
	// How long a database heartbeat keeps a device online
	DatabaseWindow time.Duration `json:"databaseWindow" yaml:"databaseWindow"`

	// How long a computed verdict is reused
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// TelemetryConfig defines session accounting settings
type TelemetryConfig struct {
	TargetHours            float64       `json:"targetHours" yaml:"targetHours"`
	Timezone               string        `json:"timezone" yaml:"timezone"`
	MaxLocationHistory     int           `json:"maxLocationHistory" yaml:"maxLocationHistory"`
	MaxAlerts              int           `json:"maxAlerts" yaml:"maxAlerts"`
	LowAccuracyMeters      float64       `json:"lowAccuracyMeters" yaml:"lowAccuracyMeters"`
	AlertSuppressionWindow time.Duration `json:"alertSuppressionWindow" yaml:"alertSuppressionWindow"`
	ComplianceWindowDays   int           `json:"complianceWindowDays" yaml:"complianceWindowDays"`
}

// ReconcileConfig defines the drift repair schedule
type ReconcileConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Time between runs
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Online slots silent for longer than this are forced offline
	StaleThreshold time.Duration `json:"staleThreshold" yaml:"staleThreshold"`

	// Sessions of fully offline units silent for longer than this are closed
	SessionIdleTimeout time.Duration `json:"sessionIdleTimeout" yaml:"sessionIdleTimeout"`
}

// GeocodingConfig defines the reverse geocoding provider
type GeocodingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Nominatim-compatible reverse endpoint
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// FCM topic that receives urgent alerts
	AlertTopic string `json:"alertTopic" yaml:"alertTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic for presence events (for google provider)
	PresenceTopicID string `json:"presenceTopicId" yaml:"presenceTopicId"`

	// Topic for alert events (for google provider)
	AlertTopicID string `json:"alertTopicId" yaml:"alertTopicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				// PRESENCE_ALLOWEDORIGINS=https://a,https://b
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings that would break presence or session accounting. Zero values
// are allowed; consumers replace them with defaults.
func (c *Config) Validate() error {
	if p := c.Presence; p != nil {
		if p.PingInterval < 0 || p.PongTimeout < 0 || p.WriteTimeout < 0 {
			return errors.New("presence timings must not be negative")
		}
		if p.PingInterval > 0 && p.PongTimeout > 0 && p.PongTimeout <= p.PingInterval {
			return errors.Errorf("presence.pongTimeout (%s) must exceed presence.pingInterval (%s)", p.PongTimeout, p.PingInterval)
		}
	}

	if s := c.Status; s != nil && (s.DatabaseWindow < 0 || s.CacheTTL < 0) {
		return errors.New("status windows must not be negative")
	}

	if t := c.Telemetry; t != nil {
		if t.Timezone != "" {
			if _, err := time.LoadLocation(t.Timezone); err != nil {
				return errors.Wrapf(err, "telemetry.timezone %q", t.Timezone)
			}
		}
		if t.TargetHours < 0 || t.TargetHours > 24 {
			return errors.Errorf("telemetry.targetHours %v must be within [0, 24]", t.TargetHours)
		}
	}

	if r := c.Reconcile; r != nil && r.Enabled {
		if r.Interval < 0 || r.StaleThreshold < 0 || r.SessionIdleTimeout < 0 {
			return errors.New("reconcile timings must not be negative")
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
