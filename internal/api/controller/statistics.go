package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/planstat/internal/domain/dto"
)

func (c *Controller) GetFilteredStatistics(ctx echo.Context) error {
	var q dto.StatisticsQuery
	if err := ctx.Bind(&q); err != nil {
		return err
	}

	res, err := c.service.GetFilteredStatistics(ctx.Request().Context(), q.IndicatorID, q.GeoLevel, q.GeoEntityID, q.Start(), q.End())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetFilteredChartData(ctx echo.Context) error {
	var q dto.ChartQuery
	if err := ctx.Bind(&q); err != nil {
		return err
	}

	chart, err := c.service.GetFilteredChartData(ctx.Request().Context(), q.IndicatorID, q.GeoLevel, q.EntityIDs(), q.Start(), q.End())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, chart)
}

func (c *Controller) GetComparisonStatistics(ctx echo.Context) error {
	var req dto.ComparisonsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	results, err := c.service.GetComparisonStatistics(ctx.Request().Context(), req.IndicatorID, req.Comparisons)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, results)
}
