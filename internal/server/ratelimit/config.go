package ratelimit

import (
	"os"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Route pattern; "{name}" matches one segment, a trailing "/" matches any suffix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Environment variables read by NewConfig
const (
	envWhitelist = "MOCKMATE_RATE_LIMIT_WHITELIST"
	envBlacklist = "MOCKMATE_RATE_LIMIT_BLACKLIST"
)

// NewConfig builds the limiter configuration for the interview API. perMinute is
// the default budget for routes without their own entry. Comma-separated IP
// lists in MOCKMATE_RATE_LIMIT_WHITELIST and MOCKMATE_RATE_LIMIT_BLACKLIST bypass
// or block clients.
func NewConfig(enabled bool, perMinute int) *Config {
	if !enabled {
		return &Config{Enabled: false}
	}
	if perMinute <= 0 {
		perMinute = 120
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    perMinute,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       parseIPList(os.Getenv(envWhitelist)),
		Blacklist:       parseIPList(os.Getenv(envBlacklist)),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Language model calls (strictest limits)
		{Path: "/sessions/{id}/questions", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/sessions/{id}/questions/{index}/answer", Method: "POST", Limit: 120, Window: time.Hour, Burst: 10},

		// Document parsing
		{Path: "/sessions", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},

		// PDF rendering
		{Path: "/sessions/{id}/report.pdf", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},

		// Remaining reads and deletes use the default limit; /health is unlimited
	}
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
