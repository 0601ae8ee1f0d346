package insight

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/api"
	"supplysense/core/auth"
	"supplysense/service/capacity"
	"supplysense/service/forecast"
	"supplysense/service/kpi"
)

func init() {
	api.RegisterModule(RegisterInsightRoutes)
}

func RegisterInsightRoutes(apiGroup *echo.Group, db *gorm.DB) {
	capacitySvc := capacity.NewService(db)
	forecastSvc := forecast.NewService(db)
	kpiSvc, err := kpi.NewService(db)
	if err != nil {
		panic("insight api: " + err.Error())
	}
	guard := auth.RequireResource(auth.ResourceInsight)

	// GET /api/capacity – factory utilization and its alert
	apiGroup.GET("/capacity", func(c echo.Context) error {
		rep, err := capacitySvc.Report(c.Request().Context())
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, rep)
	}, guard)

	// GET /api/kpi – revenue, inventory value, service level, factory load
	apiGroup.GET("/kpi", func(c echo.Context) error {
		s, err := kpiSvc.Summary(c.Request().Context())
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, s)
	}, guard)

	// GET /api/forecast – daily demand with a 7-day trailing mean
	apiGroup.GET("/forecast", func(c echo.Context) error {
		points, err := forecastSvc.Daily(c.Request().Context())
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, points)
	}, guard)
}
