package params

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/api"
	"supplysense/core/auth"
	planningEntity "supplysense/model/entity/planning"
	"supplysense/service/balancing"
	"supplysense/service/planning"
)

func init() {
	api.RegisterModule(RegisterParamsRoutes)
}

func RegisterParamsRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := planning.NewParamsService(db)
	g := apiGroup.Group("/params", auth.RequireResource(auth.ResourceParams))

	// GET /api/params/:persona – saved parameters or defaults
	g.GET("/:persona", func(c echo.Context) error {
		p, err := svc.Resolve(c.Request().Context(), c.Param("persona"))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"params":  p,
			"concern": planning.Personas[p.Persona],
		})
	})

	// PUT /api/params/:persona
	g.PUT("/:persona", func(c echo.Context) error {
		var body planningEntity.PlanningParams
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		body.Persona = c.Param("persona")
		saved, err := svc.Save(c.Request().Context(), body)
		if err != nil {
			return api.ErrorJSON(c, err, planning.ErrInvalidParams)
		}
		balancing.Invalidate(c.Request().Context())
		return c.JSON(http.StatusOK, saved)
	})
}
