package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the root of the AI4Boundaries archive on the JRC
// open data server.
const DefaultBaseURL = "https://jeodpp.jrc.ec.europa.eu/ftp/jrc-opendata/DRLL/AI4BOUNDARIES/"

type Config struct {
	BaseURL          string
	HTTPTimeoutSec   int
	RetryCooldownSec int
	UserAgent        string

	// S3 settings, used by the sync command only.
	ApiURL     string
	AccessKey  string
	SecretKey  string
	BucketName string
	Region     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		BaseURL:          getEnv("AI4B_BASE_URL", DefaultBaseURL),
		HTTPTimeoutSec:   getEnvInt("HTTP_TIMEOUT", 120),
		RetryCooldownSec: getEnvInt("RETRY_COOLDOWN", 20),
		UserAgent:        getEnv("USER_AGENT", "ai4boundaries/1.0"),
		ApiURL:           getEnv("API_URL", ""),
		AccessKey:        getEnv("ACCESS_KEY", ""),
		SecretKey:        getEnv("SECRET_KEY", ""),
		BucketName:       getEnv("BUCKET_NAME", ""),
		Region:           getEnv("REGION", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring non-numeric environment value", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}
