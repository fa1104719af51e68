package handler

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"go-enterprise-ops/internal/apperr"
)

// Envelope is the uniform response shape for every endpoint, success or
// failure.
type Envelope struct {
	Success    bool        `json:"success"`
	Status     int         `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
	RetryAfter int         `json:"retry_after,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Success:   true,
		Status:    status,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// ErrorHandler is the central boundary converter: typed service errors map to
// their taxonomy status, fiber routing errors keep their status, and anything
// unrecognized becomes a 500 whose detail only reaches logs (and the body in
// development mode).
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	development := os.Getenv("APP_ENV") == "development"

	return func(c *fiber.Ctx, err error) error {
		env := Envelope{
			Success:   false,
			Timestamp: time.Now().UTC(),
		}

		switch e := err.(type) {
		case *apperr.Error:
			env.Status = e.Status
			env.Message = e.Message
			if len(e.Fields) > 0 {
				env.Errors = e.Fields
			}
		case *fiber.Error:
			env.Status = e.Code
			env.Message = e.Message
		default:
			env.Status = fiber.StatusInternalServerError
			env.Message = "Internal Server Error"
			if development {
				env.Detail = err.Error()
			}
		}

		if env.Status >= 500 {
			log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		} else {
			log.Warnw("request rejected", "method", c.Method(), "path", c.Path(), "status", env.Status, "message", env.Message)
		}

		return c.Status(env.Status).JSON(env)
	}
}

// RateLimitReached renders the 429 envelope for the limiter middleware.
func RateLimitReached(retryAfter int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(Envelope{
			Success:    false,
			Status:     fiber.StatusTooManyRequests,
			Message:    "Too many requests. Please try again later.",
			RetryAfter: retryAfter,
			Timestamp:  time.Now().UTC(),
		})
	}
}
