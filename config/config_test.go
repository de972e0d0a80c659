package config

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	result := getEnv("TEST_VAR", "default_value")
	if result != "test_value" {
		t.Errorf("getEnv() = %s, want %s", result, "test_value")
	}

	result = getEnv("NON_EXISTENT_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}

	os.Setenv("EMPTY_VAR", "")
	defer os.Unsetenv("EMPTY_VAR")

	result = getEnv("EMPTY_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("TEST_INT", "42")
	defer os.Unsetenv("TEST_INT")

	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt() = %d, want 42", got)
	}

	if got := getEnvInt("NON_EXISTENT_INT", 7); got != 7 {
		t.Errorf("getEnvInt() = %d, want 7", got)
	}

	os.Setenv("BAD_INT", "twenty")
	defer os.Unsetenv("BAD_INT")

	if got := getEnvInt("BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt() = %d, want default 7 for non-numeric value", got)
	}
}

func TestLoad(t *testing.T) {
	originalVars := map[string]string{
		"AI4B_BASE_URL":  os.Getenv("AI4B_BASE_URL"),
		"HTTP_TIMEOUT":   os.Getenv("HTTP_TIMEOUT"),
		"RETRY_COOLDOWN": os.Getenv("RETRY_COOLDOWN"),
		"BUCKET_NAME":    os.Getenv("BUCKET_NAME"),
		"REGION":         os.Getenv("REGION"),
	}

	defer func() {
		for key, value := range originalVars {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	testVars := map[string]string{
		"AI4B_BASE_URL":  "https://mirror.example.org/AI4BOUNDARIES/",
		"HTTP_TIMEOUT":   "15",
		"RETRY_COOLDOWN": "1",
		"BUCKET_NAME":    "test-bucket",
		"REGION":         "test-region",
	}

	for key, value := range testVars {
		os.Setenv(key, value)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.BaseURL != testVars["AI4B_BASE_URL"] {
		t.Errorf("config.BaseURL = %s, want %s", config.BaseURL, testVars["AI4B_BASE_URL"])
	}

	if config.HTTPTimeoutSec != 15 {
		t.Errorf("config.HTTPTimeoutSec = %d, want 15", config.HTTPTimeoutSec)
	}

	if config.RetryCooldownSec != 1 {
		t.Errorf("config.RetryCooldownSec = %d, want 1", config.RetryCooldownSec)
	}

	if config.BucketName != testVars["BUCKET_NAME"] {
		t.Errorf("config.BucketName = %s, want %s", config.BucketName, testVars["BUCKET_NAME"])
	}

	if config.Region != testVars["REGION"] {
		t.Errorf("config.Region = %s, want %s", config.Region, testVars["REGION"])
	}

	for key := range testVars {
		os.Unsetenv(key)
	}

	config, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.BaseURL != DefaultBaseURL {
		t.Errorf("config.BaseURL = %s, want %s", config.BaseURL, DefaultBaseURL)
	}

	if config.HTTPTimeoutSec != 120 {
		t.Errorf("config.HTTPTimeoutSec = %d, want 120", config.HTTPTimeoutSec)
	}

	if config.RetryCooldownSec != 20 {
		t.Errorf("config.RetryCooldownSec = %d, want 20", config.RetryCooldownSec)
	}

	if config.BucketName != "" {
		t.Errorf("config.BucketName = %s, want empty", config.BucketName)
	}
}
