package balance

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/api"
	"supplysense/core/auth"
	"supplysense/service/balancing"
)

func init() {
	api.RegisterModule(RegisterBalanceRoutes)
}

func RegisterBalanceRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc, err := balancing.NewService(db)
	if err != nil {
		panic("balance api: " + err.Error())
	}
	g := apiGroup.Group("/balance", auth.RequireResource(auth.ResourceBalance))

	// GET /api/balance?persona= – projected stock, bucket and recommendations per row
	g.GET("", func(c echo.Context) error {
		rep, err := svc.Report(c.Request().Context(), api.Persona(c))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, rep)
	})

	// GET /api/balance/stockouts – rows in the expedite bucket only
	g.GET("/stockouts", func(c echo.Context) error {
		rep, err := svc.Report(c.Request().Context(), api.Persona(c))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		rows := rep.Stockouts()
		if rows == nil {
			rows = []balancing.Row{}
		}
		return c.JSON(http.StatusOK, echo.Map{"persona": rep.Persona, "rows": rows})
	})
}
