package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// StoreConfig holds the record store (PocketBase) configuration
type StoreConfig struct {
	URL        string
	AdminToken string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds the member-session token configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// SecurityConfig holds auth cache and cookie settings
type SecurityConfig struct {
	AuthCacheEncryptionKey string
	AuthCacheTTL           time.Duration
	SecureCookies          bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8090"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Store: StoreConfig{
			URL:        getEnv("STORE_URL", "http://localhost:8091"),
			AdminToken: getEnv("STORE_ADMIN_TOKEN", ""),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("MEMBER_SESSION_EXPIRY", 24*time.Hour),
		},
		Security: SecurityConfig{
			AuthCacheEncryptionKey: getEnv("AUTH_CACHE_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
			AuthCacheTTL:           getEnvAsDuration("AUTH_CACHE_TTL", 30*time.Second),
			SecureCookies:          getEnvAsBool("SECURE_COOKIES", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
