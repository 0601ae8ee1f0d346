package actions

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/api"
	"supplysense/core/auth"
	"supplysense/core/events"
	actionsService "supplysense/service/actions"
	"supplysense/service/fulfilment"
)

func init() {
	api.RegisterModule(RegisterActionRoutes)
}

type decisionRequest struct {
	Action string `json:"action"`
	Item   string `json:"item"`
}

func RegisterActionRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc, err := actionsService.NewService(db)
	if err != nil {
		panic("actions api: " + err.Error())
	}
	g := apiGroup.Group("/actions", auth.RequireResource(auth.ResourceActions))

	decide := func(fn func(c echo.Context, body decisionRequest) (actionsService.Decision, error)) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body decisionRequest
			if err := c.Bind(&body); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			d, err := fn(c, body)
			if err != nil {
				return api.ErrorJSON(c, err, actionsService.ErrInvalidDecision, fulfilment.ErrInvalidQuantity)
			}
			return c.JSON(http.StatusOK, d)
		}
	}

	// POST /api/actions/approve – buy from the supply pool and log the approval
	g.POST("/approve", decide(func(c echo.Context, body decisionRequest) (actionsService.Decision, error) {
		return svc.Approve(c.Request().Context(), api.Persona(c), body.Action, body.Item)
	}))

	// POST /api/actions/reject – log the rejection only
	g.POST("/reject", decide(func(c echo.Context, body decisionRequest) (actionsService.Decision, error) {
		return svc.Reject(c.Request().Context(), api.Persona(c), body.Action, body.Item)
	}))

	// GET /api/actions?limit= – decision log, newest first
	g.GET("", func(c echo.Context) error {
		entries, err := svc.Log(c.Request().Context(), api.QueryInt(c, "limit", 100))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, entries)
	})

	// GET /api/actions/events?limit= – latest events seen by this process
	g.GET("/events", func(c echo.Context) error {
		return c.JSON(http.StatusOK, events.Default().Recent(api.QueryInt(c, "limit", 50)))
	})
}
