package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL            string
	AccessTokenExpiry     time.Duration
	RefreshTokenExpiry    time.Duration
	ActivationTokenExpiry time.Duration
	CookieDomain          string
	CookieSecure          bool
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:            getEnv("APP_BASE_URL", "http://localhost:8080"),
		AccessTokenExpiry:     time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 10)),
		RefreshTokenExpiry:    time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 72)), // 3 days
		ActivationTokenExpiry: time.Minute * time.Duration(getEnvAsInt("ACTIVATION_TOKEN_EXPIRY_MINUTES", 5)),
		CookieDomain:          getEnv("COOKIE_DOMAIN", "localhost"),
		CookieSecure:          getEnvAsBool("COOKIE_SECURE", false),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetActivationTokenExpiry returns the expiry duration for activation tokens.
func (c *Config) GetActivationTokenExpiry() time.Duration {
	return c.ActivationTokenExpiry
}

// GetCookieDomain returns the domain set on auth cookies.
func (c *Config) GetCookieDomain() string {
	return c.CookieDomain
}

// GetCookieSecure returns whether auth cookies require HTTPS.
func (c *Config) GetCookieSecure() bool {
	return c.CookieSecure
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
