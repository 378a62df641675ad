package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string

	MirrorBaseURL   string
	TopicID         string
	LedgerSubmitURL string

	PostgresDSN  string
	KafkaBrokers []string
	RelayTopic   string

	SessionSecret string
	SessionTTL    time.Duration

	RequireAssignedHospital bool
	RejectDuplicateCreation bool
	BatchLimit              int

	SyncInterval time.Duration
	GridRows     int
	GridCols     int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "hemotrace"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	mirror := os.Getenv("MIRROR_BASE_URL")
	if mirror == "" {
		mirror = "https://testnet.mirrornode.hedera.com/api/v1"
	}

	relayTopic := os.Getenv("RELAY_TOPIC")
	if relayTopic == "" {
		relayTopic = "hemotrace.bag-events"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,

		MirrorBaseURL:   mirror,
		TopicID:         os.Getenv("TOPIC_ID"),
		LedgerSubmitURL: os.Getenv("LEDGER_SUBMIT_URL"),

		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,
		RelayTopic:   relayTopic,

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    envDuration("SESSION_TTL", 12*time.Hour),

		RequireAssignedHospital: envBool("REQUIRE_ASSIGNED_HOSPITAL", false),
		RejectDuplicateCreation: envBool("REJECT_DUPLICATE_CREATION", false),
		BatchLimit:              envInt("BATCH_LIMIT", 50),

		SyncInterval: envDuration("SYNC_INTERVAL", 30*time.Second),
		GridRows:     envInt("GRID_ROWS", 16),
		GridCols:     envInt("GRID_COLS", 32),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
