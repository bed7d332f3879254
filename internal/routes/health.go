package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	statusOK       = "ok"
	statusDisabled = "disabled"
	statusError    = "error"
)

// RegisterHealthRoutes adds a readiness endpoint reporting backing store
// status. Failure details go to the log, not the response.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		dbStatus := "memory"
		redisStatus := statusDisabled

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if d.DB != nil {
			dbStatus = statusOK
			if err := d.DB.Ping(ctx); err != nil {
				d.Logger.Error("health check failed", slog.String("component", "database"), slog.Any("error", err))
				dbStatus = statusError
			}
		}
		if d.Cache != nil {
			redisStatus = statusOK
			if err := d.Cache.Ping(ctx).Err(); err != nil {
				d.Logger.Error("health check failed", slog.String("component", "redis"), slog.Any("error", err))
				redisStatus = statusError
			}
		}

		status := http.StatusOK
		if (d.DB != nil && dbStatus != statusOK) || (d.Cache != nil && redisStatus != statusOK) {
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":    fiber.Map{"database": dbStatus, "redis": redisStatus},
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
