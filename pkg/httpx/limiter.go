package httpx

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/acadcopilot/copilot/pkg/slogx"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an unused bucket is kept. A bucket idle this
// long has refilled, so dropping it loses no state.
const limiterIdleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one token bucket per key and evicts idle ones.
type limiterSet struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	return &limiterSet{
		limit:     rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// reserve takes a token for key. It returns zero when the request may pass,
// otherwise how long until a token frees up.
func (s *limiterSet) reserve(key string, now time.Time) time.Duration {
	s.mu.Lock()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	if now.Sub(s.lastSweep) >= limiterIdleTTL {
		s.sweep(now)
	}
	s.mu.Unlock()

	res := b.limiter.ReserveN(now, 1)
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return d
	}
	return 0
}

// sweep must be called with mu held.
func (s *limiterSet) sweep(now time.Time) {
	for key, b := range s.buckets {
		if now.Sub(b.lastSeen) >= limiterIdleTTL {
			delete(s.buckets, key)
		}
	}
	s.lastSweep = now
}

// RateLimitMiddleware rejects requests whose key has no tokens left with a
// 429, a Retry-After header and the shared error envelope.
func RateLimitMiddleware(cfg RateLimitConfig, keyOf KeyExtractor) Middleware {
	set := newLimiterSet(cfg)
	limitHeader := strconv.Itoa(cfg.RequestsPerWindow)
	windowHeader := cfg.Window.String()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyOf(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			wait := set.reserve(key, time.Now())
			if wait == 0 {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(wait.Round(time.Second)/time.Second), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("X-RateLimit-Window", windowHeader)

			// Keys can embed an email address, so only the IP is logged.
			log.Warn("rate limit exceeded",
				"ip", IPKeyExtractor(r),
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)
			WriteError(w, http.StatusTooManyRequests, RateLimitMessage)
		})
	}
}

// RateLimitByIP charges requests to the client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser charges requests to the signed-in user and address, so
// anonymous callers still share a per-address bucket.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}

// RateLimitByIPAndJSONField charges requests to the address plus a JSON body
// field, which lets login and code endpoints throttle per email.
func RateLimitByIPAndJSONField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", IPKeyExtractor, JSONFieldKeyExtractor(field)))
}
