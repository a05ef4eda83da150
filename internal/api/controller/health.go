package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) Health(ctx echo.Context) error {
	if err := c.store.Ping(ctx.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable").SetInternal(err)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
