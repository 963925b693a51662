package middleware

import (
	"log/slog"
	"sync"
	"time"

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	domainerrors "estate/internal/domain/errors"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRPS   = 5
	defaultRateLimitBurst = 10
	visitorIdleTTL        = 5 * time.Minute
	visitorSweepInterval  = time.Minute
)

// ErrRateLimited answers clients that exceeded their request budget.
var ErrRateLimited = domainerrors.ErrRateLimited

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter is a token bucket per client IP. Idle buckets are swept lazily.
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	clock     clockwork.Clock
	lastSweep time.Time
	logger    *slog.Logger
}

// NewIPRateLimiter builds a limiter from http.rateLimit, with defaults for unset values.
func NewIPRateLimiter(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) *IPRateLimiter {
	rps, burst := float64(defaultRateLimitRPS), defaultRateLimitBurst
	if cfg != nil {
		if cfg.HTTP.RateLimit.RPS > 0 {
			rps = cfg.HTTP.RateLimit.RPS
		}
		if cfg.HTTP.RateLimit.Burst > 0 {
			burst = cfg.HTTP.RateLimit.Burst
		}
	}

	return &IPRateLimiter{
		visitors:  map[string]*visitor{},
		limit:     rate.Limit(rps),
		burst:     burst,
		clock:     clock,
		lastSweep: clock.Now(),
		logger:    logger,
	}
}

// Allow consumes one token from the bucket of ip.
func (l *IPRateLimiter) Allow(ip string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= visitorSweepInterval {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTTL {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Handle rejects requests over budget with 429.
func (l *IPRateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()
		if !l.Allow(ip) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), l.logger).
				Warn("Rate limit exceeded", slog.String("ip", ip), slog.String("path", c.Request().URL.Path))

			return ErrRateLimited
		}

		return next(c)
	}
}
