package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"genderdecoder/internal/logger"
)

// RequestLogger puts the request ID on the request context and writes one
// structured access log line per request. It must run after requestid.
func RequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		c.SetContext(logger.WithRequestID(c.Context(), requestid.FromContext(c)))

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		ev := logger.C(c.Context()).Info()
		if status >= fiber.StatusInternalServerError {
			ev = logger.C(c.Context()).Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")

		return err
	}
}
