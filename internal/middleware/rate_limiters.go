package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterInfo is a struct that holds a rate limiter and the last time it was seen.
type limiterInfo struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters tracks one token bucket per client IP. Idle buckets are pruned
// on the request path once per cleanupInterval, so no goroutine is needed.
type ipLimiters struct {
	mu              sync.Mutex
	limiters        map[string]*limiterInfo
	rps             int
	cleanupInterval time.Duration
	expiration      time.Duration
	lastCleanup     time.Time
	now             func() time.Time
}

func newIPLimiters(rps int, cleanupInterval, expiration time.Duration) *ipLimiters {
	return &ipLimiters{
		limiters:        make(map[string]*limiterInfo),
		rps:             rps,
		cleanupInterval: cleanupInterval,
		expiration:      expiration,
		now:             time.Now,
	}
}

func (l *ipLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) >= l.cleanupInterval {
		for key, info := range l.limiters {
			if now.Sub(info.lastSeen) > l.expiration {
				delete(l.limiters, key)
			}
		}
		l.lastCleanup = now
	}

	info, ok := l.limiters[ip]
	if !ok {
		info = &limiterInfo{limiter: rate.NewLimiter(rate.Limit(l.rps), l.rps)}
		l.limiters[ip] = info
	}
	info.lastSeen = now
	return info.limiter.AllowN(now, 1)
}

// RateLimitByIP applies rate limiting to requests per IP address. A
// non-positive rps disables limiting.
func RateLimitByIP(rps int, cleanupInterval time.Duration, expiration time.Duration) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiters := newIPLimiters(rps, cleanupInterval, expiration)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
