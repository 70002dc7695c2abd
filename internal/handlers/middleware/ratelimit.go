package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nkiryanov/masakin/internal/handlers/render"
)

// Requests allowed per client within the window. Zero requests disables limiting
type RateLimit struct {
	Requests int
	Window   time.Duration
}

type visitor struct {
	limiter     *rate.Limiter
	windowStart time.Time
}

// Per client IP fixed window limiter: at most Requests per Window, counted from the first request of the window
// Bucket refills one token per whole window and is replaced when the window ends, so the refill never adds a request
type RateLimiter struct {
	cfg RateLimit
	now func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func NewRateLimiter(cfg RateLimit) *RateLimiter {
	return &RateLimiter{
		cfg:      cfg,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

func (rl *RateLimiter) enabled() bool {
	return rl.cfg.Requests > 0 && rl.cfg.Window > 0
}

// Count request of the client
// Returns whether request allowed, how many requests left and when the client window resets
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, reset time.Duration) {
	if !rl.enabled() {
		return true, rl.cfg.Requests, 0
	}
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)

	v, ok := rl.visitors[key]
	if !ok || now.Sub(v.windowStart) >= rl.cfg.Window {
		v = &visitor{
			limiter:     rate.NewLimiter(rate.Every(rl.cfg.Window), rl.cfg.Requests),
			windowStart: now,
		}
		rl.visitors[key] = v
	}

	allowed = v.limiter.AllowN(now, 1)
	remaining = int(math.Max(math.Floor(v.limiter.TokensAt(now)), 0))
	reset = v.windowStart.Add(rl.cfg.Window).Sub(now)

	return allowed, remaining, reset
}

// Forget clients whose window is over: next request starts a new one anyway
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.cfg.Window {
		return
	}
	rl.lastSweep = now

	for key, v := range rl.visitors {
		if now.Sub(v.windowStart) >= rl.cfg.Window {
			delete(rl.visitors, key)
		}
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if !rl.enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, reset := rl.Allow(clientIP(r))
		resetSeconds := strconv.Itoa(int(math.Ceil(reset.Seconds())))

		w.Header().Set("RateLimit-Limit", strconv.Itoa(rl.cfg.Requests))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("RateLimit-Reset", resetSeconds)

		if !allowed {
			w.Header().Set("Retry-After", resetSeconds)
			render.Error(w, http.StatusTooManyRequests, render.CodeRateLimitExceeded, "Too many requests from this IP, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
