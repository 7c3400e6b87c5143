package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Advice AdviceConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// AdviceConfig tunes the scoring and session behavior.
type AdviceConfig struct {
	// WeightingPolicy selects how turn scores fold into the accumulated
	// scores: "diminishing" (default) or "decay".
	WeightingPolicy string
	// ReportThreshold is the minimum accumulated score shown in interim
	// summaries.
	ReportThreshold float64
	// SessionIdleTTL evicts idle sessions when > 0. Zero (the default)
	// keeps sessions for the process lifetime.
	SessionIdleTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Advice: AdviceConfig{
			WeightingPolicy: getEnv("SCORE_WEIGHTING", "diminishing"),
			ReportThreshold: getEnvAsFloat("REPORT_THRESHOLD", 5.0),
			SessionIdleTTL:  getEnvAsDuration("SESSION_IDLE_TTL", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
