package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/medorahq/clinic-api/pkg/httputil"
)

// RateLimiterConfig bounds requests per client IP.
type RateLimiterConfig struct {
	RPS   float64
	Burst int
}

type rateLimiter struct {
	limiters *gocache.Cache
	rps      rate.Limit
	burst    int
}

// NewRateLimiter creates a per-client limiter. Idle client state expires
// after ten minutes.
func NewRateLimiter(cfg RateLimiterConfig) *rateLimiter {
	return &rateLimiter{
		limiters: gocache.New(10*time.Minute, 15*time.Minute),
		rps:      rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}
}

func (rl *rateLimiter) limiterFor(ip string) *rate.Limiter {
	if v, ok := rl.limiters.Get(ip); ok {
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.limiters.SetDefault(ip, limiter)
	return limiter
}

func (rl *rateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error: "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
