// Package constants holds string constants shared across layers.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env.env value for production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint in Pub/Sub push format.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// HeaderDeviceID carries the device id on the WebSocket handshake when not in the query.
	HeaderDeviceID = "X-Device-Id"
	// HeaderMaterialID carries the material id on the WebSocket handshake when not in the query.
	HeaderMaterialID = "X-Material-Id"
)

// DateLayout is the calendar-day format used in query parameters and session keys.
const DateLayout = "2006-01-02"
