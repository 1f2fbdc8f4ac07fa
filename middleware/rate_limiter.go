package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// RateLimiter caps each client at maxRequests per window. Counters live in
// Redis keyed by IP, method and route pattern, so every admin endpoint gets
// its own budget and limits survive process restarts.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "ratelimit:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":reset"

		count, err := config.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			return
		}

		// The window opens on the first request. The reset timestamp is
		// pinned next to the counter so later responses report it unchanged.
		if count == 1 {
			config.RedisClient.Expire(ctx, key, window)
			config.RedisClient.Set(ctx, resetKey, time.Now().Add(window).Unix(), window)
		}
		resetUnix, _ := config.RedisClient.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetUnix, 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(count), 0),
			ResetAt:        resetAt,
			ResetInSeconds: max(int(time.Until(resetAt).Seconds()), 0),
		}

		// Controllers read this back when building response envelopes.
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			return
		}

		c.Next()
	}
}
