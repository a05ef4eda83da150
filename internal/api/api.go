package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/planstat/internal/api/controller"
	"github.com/ougirez/planstat/internal/pkg/config"
	"github.com/ougirez/planstat/internal/pkg/logger"
	"github.com/ougirez/planstat/internal/pkg/store"
	"github.com/ougirez/planstat/internal/service/statistics"
)

type APIService struct {
	router            *echo.Echo
	statisticsService *statistics.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router for in-process use.
func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(store store.Store, cfg *config.Config) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.ERROR)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Recover())
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(RequestLoggerMiddleware())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.statisticsService = statistics.NewStatisticsService(store, statistics.Options{
		NationalLabel:         cfg.NationalLabel,
		ComparisonParallelism: cfg.ComparisonParallelism,
	})

	cntrl := controller.NewController(svc.statisticsService, store)

	svc.router.GET("/healthz", cntrl.Health)

	api := svc.router.Group("/api/v1")

	indicators := api.Group("/indicators")
	indicators.GET("/:id/statistics", cntrl.GetFilteredStatistics)
	indicators.GET("/:id/chart", cntrl.GetFilteredChartData)
	indicators.POST("/:id/comparisons", cntrl.GetComparisonStatistics)

	geo := api.Group("/geo")
	geo.GET("/:level", cntrl.GetGeographicEntityDetails)
	geo.GET("/:level/:id", cntrl.GetGeographicEntityDetails)

	return svc, nil
}
