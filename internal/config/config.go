package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Auth     AuthConfig
	Resolver ResolverConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// UpstreamConfig points at the PHP backend this gateway fronts.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds the session-cookie verification settings. Tokens are
// issued elsewhere; this service only verifies them.
type AuthConfig struct {
	JWTSecret  string
	CookieName string
}

type ResolverConfig struct {
	CacheTTL time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Upstream configuration
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("UPSTREAM_BASE_URL", ""),
		Timeout: upstreamTimeout,
	}

	// Auth configuration
	config.Auth = AuthConfig{
		JWTSecret:  getEnv("JWT_SECRET_KEY", ""),
		CookieName: getEnv("SESSION_COOKIE_NAME", "jwt"),
	}

	// Resolver configuration
	cacheTTL, err := time.ParseDuration(getEnv("RESOLVER_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESOLVER_CACHE_TTL: %w", err)
	}

	config.Resolver = ResolverConfig{
		CacheTTL: cacheTTL,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
