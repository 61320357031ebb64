// Package constants collects string and numeric constants shared across layers.
package constants

// Pub/Sub providers accepted in config.pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

const (
	// DefaultRecentTransactions is how many ledger rows the loyalty status returns.
	DefaultRecentTransactions = 10

	// ReferralCodeLength is the length of generated referral codes.
	ReferralCodeLength = 8

	// DefaultSettingsCacheTTL applies when redis.settingsTtl is not configured.
	DefaultSettingsCacheTTL = 300 // seconds
)
