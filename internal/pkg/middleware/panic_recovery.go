package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/adnangitonga/diagnoxis/internal/pkg/logger"
	"github.com/adnangitonga/diagnoxis/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace and responds 500 without leaking internal detail.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					_ = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}
