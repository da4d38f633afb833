package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// app config, loaded once from the environment at startup
type Config struct {
	Provider          string
	Port              string
	DBDriver          string
	DBDSN             string
	GenerationTimeout time.Duration
	ReportEnabled     bool
	ReportSchedule    string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:          getEnvOrDefault("AI_PROVIDER", "gemini"),
		Port:              getEnvOrDefault("PORT", "8080"),
		DBDriver:          getEnvOrDefault("DB_DRIVER", "sqlite"),
		GenerationTimeout: getEnvDuration("GENERATION_TIMEOUT", 30*time.Second),
		ReportEnabled:     getEnvOrDefault("ACTIVITY_REPORT_ENABLED", "false") == "true",
		ReportSchedule:    getEnvOrDefault("ACTIVITY_REPORT_SCHEDULE", "0 * * * *"),
	}

	switch config.DBDriver {
	case "sqlite":
		config.DBDSN = getEnvOrDefault("DB_FILE", "db.sqlite3")
	case "postgres":
		config.DBDSN = postgresDSN()
	default:
		return nil, errors.New("unsupported DB_DRIVER: " + config.DBDriver + ". Currently supported: sqlite, postgres")
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider == "" {
		return errors.New("AI_PROVIDER must not be empty")
	}
	if _, err := strconv.Atoi(config.Port); err != nil {
		return errors.New("PORT must be numeric: " + config.Port)
	}
	// Provider credential validation is handled by the provider's own config
	return nil
}

func postgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnvOrDefault("POSTGRES_HOST", "localhost"),
		getEnvOrDefault("POSTGRES_USER", "postgres"),
		getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
		getEnvOrDefault("POSTGRES_DB", "postgres"),
		getEnvOrDefault("POSTGRES_PORT", "5432"),
		getEnvOrDefault("POSTGRES_SSLMODE", "disable"))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
