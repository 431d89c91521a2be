package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/joho/godotenv"
)

// credentialPattern is the shape of a ShopSight Data API key: an ss_live_ or
// ss_test_ prefix followed by 32 alphanumerics.
var credentialPattern = regexp.MustCompile(`^ss_(live|test)_[A-Za-z0-9]{32}$`)

const defaultBaseURL = "https://data.shopsight.io/v1"

// Config holds all application configuration. It is populated once at
// startup and treated as read-only afterwards.
type Config struct {
	// Upstream API
	APIToken string
	BaseURL  string

	// HTTP server (serve-http mode)
	HTTPPort  string
	ServerKey string // optional bearer token protecting the MCP HTTP endpoint
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  defaultBaseURL,
		HTTPPort: "8080",
	}
}

// LoadFromEnv loads .env (if present) then overrides config from environment
// variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("SHOPSIGHT_API_KEY"); v != "" {
		c.APIToken = v
	}
	if v := os.Getenv("SHOPSIGHT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("SHOPSIGHT_SERVER_KEY"); v != "" {
		c.ServerKey = v
	}
}

// Validate checks the credential before any operation is registered.
// A missing or malformed key is fatal: the server must not come up and then
// fail every call with an auth error.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("SHOPSIGHT_API_KEY is not set; a ShopSight Data API key is required")
	}
	if !credentialPattern.MatchString(c.APIToken) {
		return fmt.Errorf("SHOPSIGHT_API_KEY is malformed: expected ss_live_ or ss_test_ followed by 32 alphanumeric characters")
	}
	return nil
}
