package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointLimit overrides the default limit for one endpoint.
type EndpointLimit struct {
	// Path is the endpoint path; a trailing "/" makes it a prefix match.
	Path   string
	Method string
	Limit  int
	// Burst defaults to Limit when zero.
	Burst int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	Window          time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	EndpointLimits  []EndpointLimit
}

// DefaultConfig returns the built-in limits: parsing is the expensive
// operation and gets the strict budget, health checks are unlimited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    120,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       map[string]bool{},
		EndpointLimits: []EndpointLimit{
			{Path: "/api/v1/resume/parse", Method: "POST", Limit: 30, Burst: 5},
			{Path: "/api/v1/resume/parse-llm", Method: "POST", Limit: 10, Burst: 2},
		},
	}
}

// LoadConfig builds the configuration from environment variables, falling
// back to the defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", true)
	if !cfg.Enabled {
		return cfg
	}

	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.Window = getEnvDuration("RATE_LIMIT_WINDOW", cfg.Window)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	return cfg
}

// limitFor resolves the limit and burst for one endpoint. A zero limit means
// unlimited.
func (c *Config) limitFor(path, method string) (limit, burst int) {
	if path == "/api/v1/health" && method == "GET" {
		return 0, 0
	}

	for _, e := range c.EndpointLimits {
		if e.Method != method {
			continue
		}
		if e.Path == path || (strings.HasSuffix(e.Path, "/") && strings.HasPrefix(path, e.Path)) {
			return e.Limit, e.Burst
		}
	}
	return c.DefaultLimit, c.DefaultLimit
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
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

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
