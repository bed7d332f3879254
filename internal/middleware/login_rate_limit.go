package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const loginRateLimitPrefix = "rl:login:"

// LoginRateLimit limits failed login attempts per client IP and email, using
// a fixed one-minute window in Redis. A successful login clears the
// counter. Without a Redis client, or when Redis fails, requests pass
// through.
func LoginRateLimit(cache *redis.Client, maxPerMin int, logger *slog.Logger) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}
		var req struct {
			Email string `json:"email"`
		}
		_ = c.BodyParser(&req)

		ctx := c.UserContext()
		key := loginRateLimitKey(c.IP(), req.Email)
		cnt, err := cache.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("login rate limit unavailable", slog.Any("error", err))
			return c.Next()
		}
		if cnt == 1 {
			cache.Expire(ctx, key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many login attempts, try again later")
		}

		err = c.Next()
		if err == nil && c.Response().StatusCode() < http.StatusBadRequest {
			if delErr := cache.Del(ctx, key).Err(); delErr != nil {
				logger.Warn("login rate limit reset failed", slog.Any("error", delErr))
			}
		}
		return err
	}
}

func loginRateLimitKey(ip, email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	return loginRateLimitPrefix + ip + ":" + email
}
