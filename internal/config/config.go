package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Inference InferenceConfig
	Scraper   ScraperConfig
	Upload    UploadConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// InferenceConfig holds everything needed to reach the hosted completion
// endpoint. Endpoint and APIVersion are optional; the client falls back to
// the service defaults when they are empty.
type InferenceConfig struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
}

type ScraperConfig struct {
	Timeout time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Inference: InferenceConfig{
			Endpoint:   getEnv("INFERENCE_ENDPOINT", ""),
			APIKey:     getEnv("INFERENCE_API_KEY", ""),
			Deployment: getEnv("INFERENCE_DEPLOYMENT", "gemini-2.5-flash"),
			APIVersion: getEnv("INFERENCE_API_VERSION", ""),
		},
		Scraper: ScraperConfig{
			Timeout: getEnvAsDuration("SCRAPE_TIMEOUT", "10s"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
