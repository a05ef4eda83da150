package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/logger"
)

// RequestIDMiddleware tags the request with an id, taken from the incoming header
// when present, and binds a logger carrying it to the request context.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Response().Header().Set(constants.HeaderRequestID, id)
		ctx.Set(constants.CtxKeyRequestID, id)

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithFields(req.Context(), constants.CtxKeyRequestID, id)))

		return next(ctx)
	}
}

func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Infof(c.Request().Context(), "%s %s %d %s", v.Method, v.URI, v.Status, v.Latency.Round(time.Microsecond))
			return nil
		},
	})
}
