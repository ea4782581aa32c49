package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nitinmeharia/rule-engine/internal/auth"
)

// RateLimiter implements sliding-window rate limiting on Redis, keyed by the
// authenticated client ID.
type RateLimiter struct {
	client *redis.Client
	rps    int
	burst  int
	window time.Duration
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(client *redis.Client, rps, burst int) *RateLimiter {
	return &RateLimiter{
		client: client,
		rps:    rps,
		burst:  burst,
		window: time.Second,
	}
}

// Middleware returns the rate limiting middleware.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := auth.GetClientID(c)
		if clientID == "" {
			clientID = c.ClientIP()
		}

		allowed, remaining, err := rl.checkLimit(c.Request.Context(), clientID)
		if err != nil {
			// Fail open on Redis errors.
			log.Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("rate limiter redis error")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rps))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    "RATE_LIMITED",
				"message": "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}

// checkLimit applies a sliding window log over the client's recent requests.
func (rl *RateLimiter) checkLimit(ctx context.Context, clientID string) (allowed bool, remaining int, err error) {
	now := time.Now().UnixMilli()
	windowStart := now - rl.window.Milliseconds()
	key := fmt.Sprintf("ratelimit:%s", clientID)

	pipe := rl.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: now,
	})
	countCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, 2*rl.window)

	if _, err = pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	count := int(countCmd.Val())
	remaining = rl.burst - count
	if remaining < 0 {
		remaining = 0
	}
	allowed = count <= rl.burst

	return allowed, remaining, nil
}
