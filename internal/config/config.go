package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Admin     AdminConfig
	Options   OptionsConfig
	Lifecycle LifecycleConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// AuthConfig holds identity token configuration
type AuthConfig struct {
	Secret      string
	Issuer      string
	TokenExpiry time.Duration
}

// AdminConfig holds the bcrypt hash guarding option mutations.
// An empty hash leaves option mutations open.
type AdminConfig struct {
	KeyHash string
}

// OptionsConfig holds predefined option caching configuration
type OptionsConfig struct {
	CacheTTL time.Duration
}

// LifecycleConfig holds application and match lifecycle policies
type LifecycleConfig struct {
	AllowReapply             bool
	TalentTerminationCleanup bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			Env:         getEnv("SERVER_ENV", "development"),
			CORSOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvAsInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "mise"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Auth: AuthConfig{
			Secret:      getEnv("AUTH_JWT_SECRET", "change-this-in-production"),
			Issuer:      getEnv("AUTH_JWT_ISSUER", "https://auth.mise.local"),
			TokenExpiry: getEnvAsDuration("AUTH_TOKEN_EXPIRY", time.Hour),
		},
		Admin: AdminConfig{
			KeyHash: getEnv("ADMIN_KEY_HASH", ""),
		},
		Options: OptionsConfig{
			CacheTTL: getEnvAsDuration("OPTIONS_CACHE_TTL", 5*time.Minute),
		},
		Lifecycle: LifecycleConfig{
			AllowReapply:             getEnvAsBool("LIFECYCLE_ALLOW_REAPPLY", false),
			TalentTerminationCleanup: getEnvAsBool("LIFECYCLE_TALENT_TERMINATION_CLEANUP", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
