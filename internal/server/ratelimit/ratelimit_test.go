package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:      true,
		DefaultLimit: 2,
		Window:       time.Minute,
		Whitelist:    map[string]bool{},
	}
}

func TestLimiter_BurstExhaustion(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/v1/anything", "GET")
		require.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/v1/anything", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/x", "GET")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.2.3.4", "/x", "GET")
	assert.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/x", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/x", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/x", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_HealthEndpointUnlimited(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 1
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/v1/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_EndpointOverride(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	defer l.Stop()

	// The parse endpoint allows a burst of 5.
	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/v1/resume/parse", "POST")
		require.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, info := l.Allow("1.2.3.4", "/api/v1/resume/parse", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 30, info.Limit)
}

func TestConfig_LimitFor(t *testing.T) {
	cfg := DefaultConfig()

	limit, burst := cfg.limitFor("/api/v1/resume/parse", "POST")
	assert.Equal(t, 30, limit)
	assert.Equal(t, 5, burst)

	limit, _ = cfg.limitFor("/api/v1/health", "GET")
	assert.Zero(t, limit)

	limit, burst = cfg.limitFor("/api/v1/other", "GET")
	assert.Equal(t, 120, limit)
	assert.Equal(t, 120, burst)
}

func TestTokenBucket_Refill(t *testing.T) {
	// 100 tokens per second so the refill is observable without sleeping long.
	tb := newTokenBucket(1, 100)

	require.True(t, tb.allow())
	assert.False(t, tb.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, tb.allow())
}
