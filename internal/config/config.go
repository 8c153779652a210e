package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config is the application configuration loaded from environment variables.
// It is constructed once at startup and passed explicitly to the components
// that need it.
type Config struct {
	// Server configuration
	Port   int    `json:"port"`
	Host   string `json:"host"`
	AppEnv string `json:"app_env"`
	AppURL string `json:"app_url"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_ssl_mode"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Session configuration
	SessionSecret   string `json:"session_secret"`
	SessionTTLHours int    `json:"session_ttl_hours"`

	// Google sign-in
	GoogleClientID string `json:"google_client_id"`

	// Mail delivery
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUser     string `json:"smtp_user"`
	SMTPPassword string `json:"smtp_password"`
	MailFrom     string `json:"mail_from"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, AppEnv: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, SessionSecret: [REDACTED], GoogleClientID: %s, SMTPHost: %s}",
		c.Port, c.Host, c.AppEnv, c.DBDriver, c.DBHost, c.DBName, c.DBUser, c.LogLevel, c.GoogleClientID, c.SMTPHost)
}

// IsProduction reports whether the app runs with production settings, which
// among other things makes session cookies Secure-only.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig reads the configuration from environment variables and returns
// a Config struct. Returns an error if a required variable is missing or
// malformed.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	sessionSecret := GetEnvWithDefault("SESSION_SECRET", "")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	config := &Config{
		Port:            port,
		Host:            GetEnvWithDefault("APP_HOST", "localhost"),
		AppEnv:          GetEnvWithDefault("APP_ENV", "development"),
		AppURL:          GetEnvWithDefault("APP_URL", "http://localhost:3000"),
		DBDriver:        GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:          GetEnvWithDefault("DB_PATH", "dodo.sqlite"),
		DBHost:          GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:          GetEnvWithDefault("DB_PORT", "5432"),
		DBName:          GetEnvWithDefault("DB_NAME", "dodo"),
		DBUser:          GetEnvWithDefault("DB_USER", "dodo"),
		DBPassword:      GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:       GetEnvWithDefault("DB_SSLMODE", "disable"),
		LogLevel:        GetEnvWithDefault("LOG_LEVEL", "info"),
		SessionSecret:   sessionSecret,
		SessionTTLHours: GetEnvAsType("SESSION_TTL_HOURS", 24*7),
		GoogleClientID:  GetEnvWithDefault("GOOGLE_CLIENT_ID", ""),
		SMTPHost:        GetEnvWithDefault("SMTP_HOST", ""),
		SMTPPort:        GetEnvAsType("SMTP_PORT", 587),
		SMTPUser:        GetEnvWithDefault("SMTP_USER", ""),
		SMTPPassword:    GetEnvWithDefault("SMTP_PASSWORD", ""),
		MailFrom:        GetEnvWithDefault("MAIL_FROM", "onboarding@dodo-pizza.dev"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the
// specified type using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
