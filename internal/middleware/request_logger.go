package middleware

import (
	"time"

	"stylecurator/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = fiber.HeaderXRequestID

// RequestIDKey is the Locals key the request ID is stored under.
const RequestIDKey = "request_id"

// RequestID makes sure every request has an ID. An incoming X-Request-ID is
// kept; otherwise a new UUID is generated. The ID is echoed in the response.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     HeaderRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}

// AccessLog writes one structured entry per request.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Run the error handler now so the logged status is the one sent.
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		entry := log.WithFields(map[string]any{
			"request_id": c.Locals(RequestIDKey),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Warn("request failed")
		case status >= fiber.StatusBadRequest:
			entry.Info("request rejected")
		default:
			entry.Debug("request served")
		}
		return nil
	}
}
