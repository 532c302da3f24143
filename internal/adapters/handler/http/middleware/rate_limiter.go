package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a fixed window of requests per client IP, counted in
// Redis. The limiter fails open: if Redis cannot be reached the request goes
// through unthrottled.
func RateLimiter(rdb *redis.Client, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "ratelimit:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("Rate limiter bypassed, redis unreachable: %v", err)
			c.Next()
			return
		}

		// First hit of the window arms its expiry. If that fails the key
		// would count forever, so drop it and let the request through.
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Printf("Rate limiter could not arm the window: %v", err)
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > limit {
			ttl, err := rdb.TTL(ctx, key).Result()
			if err != nil || ttl < 0 {
				ttl = window
			}
			c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
