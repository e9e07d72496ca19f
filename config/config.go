package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	TwelveAPIKey   string
	Symbol         string
	LookbackDays   int
	LogLevel       string
	RequestTimeout int // seconds

	PriceZThreshold  float64
	VolumeWindow     int
	VolumeRatio      float64
	IQRMultiplier    float64
	VolatilityWindow int
	VolatilityRatio  float64
	GapThreshold     float64

	TelegramBotToken string
	TelegramChatID   int64
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		TwelveAPIKey:   os.Getenv("TWELVE_API_KEY"),
		Symbol:         getEnvWithDefault("SYMBOL", "EUR/USD"),
		LookbackDays:   getEnvIntWithDefault("LOOKBACK_DAYS", 252),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout: getEnvIntWithDefault("REQUEST_TIMEOUT", 30),

		PriceZThreshold:  getEnvFloatWithDefault("PRICE_Z_THRESHOLD", 3.0),
		VolumeWindow:     getEnvIntWithDefault("VOLUME_WINDOW", 20),
		VolumeRatio:      getEnvFloatWithDefault("VOLUME_RATIO", 3.0),
		IQRMultiplier:    getEnvFloatWithDefault("IQR_MULTIPLIER", 1.5),
		VolatilityWindow: getEnvIntWithDefault("VOLATILITY_WINDOW", 20),
		VolatilityRatio:  getEnvFloatWithDefault("VOLATILITY_RATIO", 2.0),
		GapThreshold:     getEnvFloatWithDefault("GAP_THRESHOLD", 0.05),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0),
	}

	return cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
