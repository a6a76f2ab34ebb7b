package kafka

import (
	"time"
)

// Config holds Kafka configuration
type Config struct {
	Brokers  []string
	ClientID string

	// Producer settings
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int
	MaxAttempts  int

	// Security settings
	EnableTLS    bool
	EnableSASL   bool
	SASLUsername string
	SASLPassword string
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig(brokers []string) *Config {
	return &Config{
		Brokers:      brokers,
		ClientID:     "accounts-service",
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: -1, // all replicas
		MaxAttempts:  3,
	}
}

// Topics defines the topic names used by the filing platform
var Topics = struct {
	AccountsEvents string
}{
	AccountsEvents: "filings.accounts.events",
}

// TopicConfig holds configuration for topic creation
type TopicConfig struct {
	Name              string
	NumPartitions     int
	ReplicationFactor int
	RetentionMs       int64
}

// DefaultTopicConfigs returns the topic configurations for the filing platform
func DefaultTopicConfigs() []TopicConfig {
	return []TopicConfig{
		{Name: Topics.AccountsEvents, NumPartitions: 6, ReplicationFactor: 3, RetentionMs: 7 * 24 * 60 * 60 * 1000},
	}
}
