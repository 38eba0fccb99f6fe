package serverutils

import (
	"time"

	"ai-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		rid, _ := ctx.Locals("requestid").(string)
		log.Info("http", "request completed", map[string]interface{}{
			"request_id": rid,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
		})

		return err
	}
}
