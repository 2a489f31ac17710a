// Package constants holds configuration values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Ledger defaults written by the shipment lifecycle.
const (
	OriginLocation            = "Origin Facility"
	OriginDescription         = "Shipment created and awaiting confirmation"
	DefaultTransitionLocation = "System Update"
)
