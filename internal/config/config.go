package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Dataset source selectors for DATA_SOURCE.
const (
	SourceCSV    = "csv"
	SourceSheets = "sheets"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	GRPCPort              int
	GRPCReflectionEnabled bool

	DataSource            string
	DataFilePath          string
	SheetsSpreadsheetID   string
	SheetsWorksheet       string
	GoogleCredentialsFile string
	CacheTTL              time.Duration
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	portStr := getEnv("GRPC_PORT", "50051")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 50051
	}

	reflectionStr := getEnv("GRPC_REFLECTION_ENABLED", "false")
	reflection, err := strconv.ParseBool(reflectionStr)
	if err != nil {
		reflection = false
	}

	ttlStr := getEnv("CACHE_TTL_MINUTES", "5")
	ttlMinutes, err := strconv.Atoi(ttlStr)
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = 5
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/permissions.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		GRPCPort:              port,
		GRPCReflectionEnabled: reflection,

		DataSource:            getEnv("DATA_SOURCE", SourceCSV),
		DataFilePath:          getEnv("DATA_FILE_PATH", "./data/observations.csv"),
		SheetsSpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsWorksheet:       getEnv("SHEETS_WORKSHEET", "Sheet1"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		CacheTTL:              time.Duration(ttlMinutes) * time.Minute,
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
