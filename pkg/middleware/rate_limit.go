package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit is a fixed-window quota: at most Requests hits per caller and
// route within Window.
type RateLimit struct {
	Requests int64
	Window   time.Duration
}

// RateLimitMiddleware counts requests in redis per route and caller. The
// caller is the authenticated user when available, the client IP otherwise.
// An over-quota response carries a Retry-After hint from the window's
// remaining TTL.
func RateLimitMiddleware(client *redis.Client, rl RateLimit) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString("user_id")
		if caller == "" {
			caller = c.ClientIP()
		}

		key := "ratelimit:" + c.FullPath() + ":" + caller
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate limit check failed"})
			return
		}
		if count == 1 {
			client.Expire(ctx, key, rl.Window)
		}

		if count > rl.Requests {
			if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())+1))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
