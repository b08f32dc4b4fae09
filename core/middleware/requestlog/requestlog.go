package requestlog

import (
	"errors"
	"time"

	"lab-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// New returns a middleware logging each request at debug level.
// Server-side failures (5xx) are logged at warn level.
// Request strings are copied since fiber reuses their buffers after the handler returns.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		l := logger.WithRayID(log, c)
		fields := []zap.Field{
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", status),
			zap.String("ip", utils.CopyString(c.IP())),
			zap.Duration("took", time.Since(start)),
		}

		if status >= fiber.StatusInternalServerError {
			l.Warn("Request failed", append(fields, zap.Error(err))...)
		} else {
			l.Debug("Request served", fields...)
		}
		return err
	}
}
