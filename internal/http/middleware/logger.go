package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"mdlib/internal/logging"
)

// Logger writes one structured access log line per request.
// Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency_ms
//
// 5xx responses are logged at error level, 4xx at warn, the rest at info.
func Logger(log zerolog.Logger) fiber.Handler {
	log = logging.Component(log, "http")

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}

		ev.Str("event", "http_request").
			Str("request_id", RequestIDFrom(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000).
			Msg("request handled")

		return err
	}
}
