package httpx

import (
	"math"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/aussiebroadwan/smartbank/pkg/slogx"
	"golang.org/x/time/rate"
)

// DetailTooManyRequests is the body detail of every 429.
const DetailTooManyRequests = "Too many requests. Please try again later."

// RateLimitConfig is a token bucket refilled at RequestsPerWindow per Window
// holding at most Burst tokens.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Limit is the refill rate in tokens per second.
func (c RateLimitConfig) Limit() rate.Limit {
	if c.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// Rate limit tiers. Credential endpoints use Strict, authenticated KYC calls
// Moderate, reads Lenient and probes Public.
var (
	StrictLimit   = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}
	LenientLimit  = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}
	PublicLimit   = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

// ParseRateLimitFromEnv overlays RATELIMIT_<prefix>_REQUESTS,
// RATELIMIT_<prefix>_WINDOW_SEC and RATELIMIT_<prefix>_BURST onto def.
// Values that are missing, unparsable or not positive keep the default.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	name := "RATELIMIT_" + prefix + "_"
	if n, ok := positiveEnvInt(name + "REQUESTS"); ok {
		def.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt(name + "WINDOW_SEC"); ok {
		def.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt(name + "BURST"); ok {
		def.Burst = n
	}
	return def
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// bucketSet holds one limiter per key. Buckets idle for longer than the
// window are refilled anyway, so they are dropped on the next sweep.
type bucketSet struct {
	cfg RateLimitConfig

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newBucketSet(cfg RateLimitConfig) *bucketSet {
	return &bucketSet{
		cfg:       cfg,
		buckets:   make(map[string]*bucket),
		nextSweep: time.Now().Add(sweepInterval(cfg)),
	}
}

func sweepInterval(cfg RateLimitConfig) time.Duration {
	return max(cfg.Window, time.Minute)
}

// take consumes a token for key. When the bucket is empty it reports how
// long until the next token.
func (s *bucketSet) take(key string, now time.Time) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.After(s.nextSweep) {
		idle := sweepInterval(s.cfg)
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) > idle {
				delete(s.buckets, k)
			}
		}
		s.nextSweep = now.Add(idle)
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(s.cfg.Limit(), s.cfg.Burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}

	limit := float64(s.cfg.Limit())
	if limit <= 0 {
		return false, s.cfg.Window
	}
	missing := 1 - b.limiter.TokensAt(now)
	return false, time.Duration(missing / limit * float64(time.Second))
}

// RateLimitMiddleware rejects requests with 429 once the bucket for their key
// is empty. Requests whose key cannot be extracted pass through.
func RateLimitMiddleware(cfg RateLimitConfig, keyOf KeyExtractor) Middleware {
	buckets := newBucketSet(cfg)
	limitHeader := strconv.Itoa(cfg.RequestsPerWindow)
	windowHeader := cfg.Window.String()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyOf(r)
			if key == "" {
				slogx.FromContext(r.Context()).Warn("rate limit key missing, request not limited", "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := buckets.take(key, time.Now())
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(math.Ceil(wait.Seconds())), 1)
			h := w.Header()
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			h.Set("X-RateLimit-Limit", limitHeader)
			h.Set("X-RateLimit-Window", windowHeader)

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", key,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)
			WriteDetail(w, http.StatusTooManyRequests, DetailTooManyRequests)
		})
	}
}

// RateLimitByIP limits per client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser limits per authenticated user, falling back to the client
// address before authentication has run.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}

// RateLimitByIPAndJSONField limits per client address and body field, such
// as login attempts per address and email.
func RateLimitByIPAndJSONField(cfg RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", IPKeyExtractor, JSONFieldKeyExtractor(field)))
}
