package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported store drivers
const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	Database       DatabaseConfig
	JWT            JWTConfig
	Admin          AdminConfig
	CORSOrigins    string
	LoginRateLimit int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	MongoURL string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// AdminConfig holds the seeded administrator credentials
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := loadJWTConfig()
	if err != nil {
		return nil, err
	}

	rateLimit, err := getEnvInt("LOGIN_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "8001"),
		Database: database,
		JWT:      jwtConfig,
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@arunodayvidyalay.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
		LoginRateLimit: rateLimit,
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s, DB: %s]", appMode, database.Driver)
	return config, nil
}

// loadDatabaseConfig loads the store driver and its connection settings
func loadDatabaseConfig() (DatabaseConfig, error) {
	d := DatabaseConfig{
		Driver:   strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", DriverMongo))),
		MongoURL: os.Getenv("MONGO_URL"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   os.Getenv("DB_NAME"),
	}

	switch d.Driver {
	case DriverMongo:
		if d.MongoURL == "" {
			return d, fmt.Errorf("MONGO_URL is required when DB_DRIVER is %s", DriverMongo)
		}
		if d.DBName == "" {
			return d, fmt.Errorf("DB_NAME is required when DB_DRIVER is %s", DriverMongo)
		}
	case DriverMySQL:
		if d.DBName == "" {
			return d, fmt.Errorf("DB_NAME is required when DB_DRIVER is %s", DriverMySQL)
		}
	case DriverMemory:
	default:
		return d, fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mongo', 'mysql' or 'memory')", d.Driver)
	}
	return d, nil
}

// loadJWTConfig loads session token config
func loadJWTConfig() (JWTConfig, error) {
	hours, err := getEnvInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return JWTConfig{}, err
	}
	if hours <= 0 {
		return JWTConfig{}, fmt.Errorf("JWT_EXPIRATION_HOURS must be positive, got %d", hours)
	}
	return JWTConfig{
		Secret:          getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		ExpirationHours: hours,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: '%s' (must be an integer)", key, value)
	}
	return n, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// TokenExpiry returns the session token lifetime
func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.JWT.ExpirationHours) * time.Hour
}

// GetAllowedOrigins returns allowed origins for CORS in the comma-separated
// form fiber's cors middleware expects
func (c *Config) GetAllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ",")
}
