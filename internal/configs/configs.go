/*
Package configs is responsible for loading and parsing the application's configuration settings.

It primarily configures server parameters by reading operating system environment variables,
including the running environment, port, CORS allowed origins, the upstream commerce GraphQL
endpoint, and the secret used to encrypt the customer credential cookie.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// EnvironmentProduction is the value of ENVIRONMENT that enables production hardening
	// (secure cookies, __Host- cookie names, mandatory secrets).
	EnvironmentProduction = "production"

	// EnvironmentDevelopment is the default running environment.
	EnvironmentDevelopment = "development"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string
	// AuthCookieSecret is the key material for the AES-256-GCM cipher protecting the
	// customer credential cookie. Required outside development.
	AuthCookieSecret string

	// Upstream Commerce Settings
	// CommerceEndpoint is the URL of the commerce platform's GraphQL API.
	CommerceEndpoint string
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary type conversions and validation.
// It returns a pointer to the AppConfig struct and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	// Environment
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = EnvironmentDevelopment
	}

	// Port
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	// AllowedOrigins
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	// AuthCookieSecret
	authCookieSecret := os.Getenv("AUTH_COOKIE_SECRET")
	if cfg.Environment == EnvironmentDevelopment {
		if authCookieSecret == "" {
			authCookieSecret = "your_default_insecure_secret_key_change_me"
		}
	} else {
		if authCookieSecret == "" {
			return nil, fmt.Errorf("AUTH_COOKIE_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
	}
	cfg.AuthCookieSecret = authCookieSecret

	// --- Upstream Commerce Settings ---
	cfg.CommerceEndpoint = os.Getenv("COMMERCE_GRAPHQL_ENDPOINT")
	if cfg.CommerceEndpoint == "" {
		if cfg.Environment == EnvironmentDevelopment {
			cfg.CommerceEndpoint = "http://localhost:8081/graphql"
		} else {
			return nil, fmt.Errorf("COMMERCE_GRAPHQL_ENDPOINT environment variable is required in %s environment", cfg.Environment)
		}
	}

	return cfg, nil
}

// IsProduction reports whether the application is running in the production environment.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// AuthCookieName returns the name of the encrypted credential cookie. Production uses
// the __Host- prefix, which browsers only accept for Secure, Path=/ host-only cookies.
func (c *AppConfig) AuthCookieName() string {
	if c.IsProduction() {
		return "__Host-auth"
	}
	return "auth"
}

// GuestCartCookieName returns the name of the cookie holding the persisted guest cart id.
func (c *AppConfig) GuestCartCookieName() string {
	if c.IsProduction() {
		return "__Host-cart"
	}
	return "cart"
}
