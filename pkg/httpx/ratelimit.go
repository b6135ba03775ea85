package httpx

import (
	"os"
	"strconv"
	"time"
)

// RateLimitMessage is the error text returned with 429 responses.
const RateLimitMessage = "请求过于频繁，请稍后再试"

// RateLimitConfig is a token bucket: RequestsPerWindow tokens refill evenly
// over Window and at most Burst may be spent at once.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Profiles shared by the routes. Each can be overridden at startup with
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and
// RATELIMIT_<NAME>_BURST.
var (
	// StrictLimit guards credential and verification code endpoints.
	StrictLimit = ParseRateLimitFromEnv("STRICT", RateLimitConfig{5, time.Minute, 5})

	// ModerateLimit guards session bound writes such as logout.
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", RateLimitConfig{20, time.Minute, 20})

	// LenientLimit guards session reads and health probes.
	LenientLimit = ParseRateLimitFromEnv("LENIENT", RateLimitConfig{100, time.Minute, 100})

	// PublicLimit guards static documentation.
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", RateLimitConfig{1000, time.Minute, 1000})
)

// ParseRateLimitFromEnv overlays RATELIMIT_<name>_* variables on def.
// Missing, malformed and non-positive values keep the default.
func ParseRateLimitFromEnv(name string, def RateLimitConfig) RateLimitConfig {
	prefix := "RATELIMIT_" + name + "_"

	cfg := def
	if n, ok := positiveEnvInt(prefix + "REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt(prefix + "WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt(prefix + "BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
