package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/filings-platform/accounts-service/internal/infrastructure/transactions"
	"github.com/filings-platform/accounts-service/pkg/kafka"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
	"github.com/filings-platform/accounts-service/pkg/outbox"
)

// Config holds application configuration. Environment variables are the
// primary source; CONFIG_FILE names an optional YAML overlay applied on top.
type Config struct {
	ServerAddr   string
	MongoDB      *mongodb.Config
	Kafka        *kafka.Config
	Transactions transactions.Config
	Outbox       *outbox.PublisherConfig

	TracingEnabled bool
	OTLPEndpoint   string
	Environment    string
	LogLevel       string
}

// fileConfig is the YAML overlay shape. Every field is optional; zero values
// leave the environment-derived value in place.
type fileConfig struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	MongoDB struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongodb"`
	Kafka struct {
		Brokers []string `yaml:"brokers"`
	} `yaml:"kafka"`
	Transactions struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"transactions"`
	Outbox struct {
		PollIntervalMS int `yaml:"poll_interval_ms"`
		BatchSize      int `yaml:"batch_size"`
		RetentionHours int `yaml:"retention_hours"`
	} `yaml:"outbox"`
	Tracing struct {
		Enabled      *bool  `yaml:"enabled"`
		OTLPEndpoint string `yaml:"otlp_endpoint"`
	} `yaml:"tracing"`
}

func loadConfig() (*Config, error) {
	mongoCfg := mongodb.DefaultConfig()
	mongoCfg.URI = getEnv("MONGODB_URI", mongoCfg.URI)
	mongoCfg.Database = getEnv("MONGODB_DATABASE", "accounts_db")

	kafkaCfg := kafka.DefaultConfig(strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","))

	txCfg := transactions.DefaultConfig()
	txCfg.BaseURL = getEnv("TRANSACTIONS_API_URL", txCfg.BaseURL)

	outboxCfg := outbox.DefaultPublisherConfig()
	if v := getEnv("OUTBOX_BATCH_SIZE", ""); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OUTBOX_BATCH_SIZE %q: %w", v, err)
		}
		outboxCfg.BatchSize = size
	}
	if v := getEnv("OUTBOX_RETENTION_HOURS", ""); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OUTBOX_RETENTION_HOURS %q: %w", v, err)
		}
		outboxCfg.Retention = time.Duration(hours) * time.Hour
	}

	cfg := &Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		MongoDB:        mongoCfg,
		Kafka:          kafkaCfg,
		Transactions:   txCfg,
		Outbox:         outboxCfg,
		TracingEnabled: getEnv("TRACING_ENABLED", "true") == "true",
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Server.Addr != "" {
		c.ServerAddr = fc.Server.Addr
	}
	if fc.MongoDB.URI != "" {
		c.MongoDB.URI = fc.MongoDB.URI
	}
	if fc.MongoDB.Database != "" {
		c.MongoDB.Database = fc.MongoDB.Database
	}
	if len(fc.Kafka.Brokers) > 0 {
		c.Kafka.Brokers = fc.Kafka.Brokers
	}
	if fc.Transactions.BaseURL != "" {
		c.Transactions.BaseURL = fc.Transactions.BaseURL
	}
	if fc.Outbox.PollIntervalMS > 0 {
		c.Outbox.PollInterval = time.Duration(fc.Outbox.PollIntervalMS) * time.Millisecond
	}
	if fc.Outbox.BatchSize > 0 {
		c.Outbox.BatchSize = fc.Outbox.BatchSize
	}
	if fc.Outbox.RetentionHours > 0 {
		c.Outbox.Retention = time.Duration(fc.Outbox.RetentionHours) * time.Hour
	}
	if fc.Tracing.Enabled != nil {
		c.TracingEnabled = *fc.Tracing.Enabled
	}
	if fc.Tracing.OTLPEndpoint != "" {
		c.OTLPEndpoint = fc.Tracing.OTLPEndpoint
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
