package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/evcharge-admin-api/pkg/logger"
)

// RequestLogger escribe una línea por petición con método, ruta, estado y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = classify(err, "").status
		}
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Int64("admin_id", GetAdminID(c)).
			Msg("petición HTTP")
		return err
	}
}
