package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	AppEnv      string
	HTTPPort    string
	PostgresDSN string

	// MasterWallet receives the payments demanded by the gate.
	MasterWallet   string
	PaymentNetwork string

	ModerationCron      string
	ModerationBatchSize int
	VisionEndpoint      string
	VisionAPIKey        string

	CreativeBaseURL string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "adx402"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	network := os.Getenv("PAYMENT_NETWORK")
	if network == "" {
		network = "base-sepolia"
	}

	cron := os.Getenv("MODERATION_CRON")
	if cron == "" {
		cron = "0 */6 * * *"
	}

	return Config{
		ServiceName: service,
		AppEnv:      appEnv,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		MasterWallet:   os.Getenv("MASTER_WALLET"),
		PaymentNetwork: network,

		ModerationCron:      cron,
		ModerationBatchSize: envInt("MODERATION_BATCH_SIZE", 100),
		VisionEndpoint:      os.Getenv("VISION_ENDPOINT"),
		VisionAPIKey:        os.Getenv("VISION_API_KEY"),

		CreativeBaseURL: os.Getenv("CREATIVE_BASE_URL"),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
