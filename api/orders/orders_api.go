package orders

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"supplysense/api"
	"supplysense/core/auth"
	salesEntity "supplysense/model/entity/sales"
	salesService "supplysense/service/sales"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

type statusRequest struct {
	Status string `json:"status"`
}

func RegisterOrderRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := salesService.NewOrderService(db)
	g := apiGroup.Group("/orders", auth.RequireResource(auth.ResourceOrders))

	// GET /api/orders?limit=
	g.GET("", func(c echo.Context) error {
		rows, err := svc.List(c.Request().Context(), api.QueryInt(c, "limit", 0))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, rows)
	})

	// POST /api/orders – manual order entry
	g.POST("", func(c echo.Context) error {
		var body salesEntity.Order
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		o, err := svc.Create(c.Request().Context(), body)
		if err != nil {
			return api.ErrorJSON(c, err, salesService.ErrInvalidOrder)
		}
		return c.JSON(http.StatusCreated, o)
	})

	// POST /api/orders/:id/status – append a lifecycle status
	g.POST("/:id/status", func(c echo.Context) error {
		var body statusRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		entry, err := svc.UpdateStatus(c.Request().Context(), c.Param("id"), body.Status)
		if errors.Is(err, salesService.ErrUnknownOrder) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		if err != nil {
			return api.ErrorJSON(c, err, salesService.ErrInvalidStatus)
		}
		return c.JSON(http.StatusOK, entry)
	})

	// GET /api/orders/:id/status – status history, oldest first
	g.GET("/:id/status", func(c echo.Context) error {
		hist, err := svc.History(c.Request().Context(), c.Param("id"))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		if len(hist) == 0 {
			return c.JSON(http.StatusNotFound, echo.Map{"error": salesService.ErrUnknownOrder.Error()})
		}
		return c.JSON(http.StatusOK, hist)
	})
}
