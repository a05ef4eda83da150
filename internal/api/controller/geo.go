package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/planstat/internal/domain/dto"
)

// GetGeographicEntityDetails answers null when the level has no entity to show.
func (c *Controller) GetGeographicEntityDetails(ctx echo.Context) error {
	var q dto.GeoEntityQuery
	if err := ctx.Bind(&q); err != nil {
		return err
	}

	details, err := c.service.GetGeographicEntityDetails(ctx.Request().Context(), q.GeoLevel, q.GeoEntityID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, details)
}
