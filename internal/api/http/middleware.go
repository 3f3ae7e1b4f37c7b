package http

import (
	"net/http"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/observability"
)

// RegisterMiddlewares attaches global middlewares such as panic recovery and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(recoveryMiddleware(logger))
	app.Use(observability.RequestLogger(logger, metrics))
}

func recoveryMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				// Error shape matches the backend so pages cannot tell
				// a gateway failure from a backend one.
				err = c.Status(http.StatusInternalServerError).JSON(fiber.Map{
					"detail": "internal gateway error",
				})
			}
		}()
		return c.Next()
	}
}
