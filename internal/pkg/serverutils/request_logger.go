package serverutils

import (
	"time"

	"notes-app-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger writes one access line per request through the app logger.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet; report the status it will pick.
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		details := map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
		}
		if status >= fiber.StatusInternalServerError {
			log.Warn("HTTP", "request failed", details)
		} else {
			log.Info("HTTP", "request", details)
		}
		return err
	}
}
